package logger_test

import (
	"testing"

	"github.com/jetsetilly/sparkler/logger"
	"github.com/jetsetilly/sparkler/test"
)

func TestLogger(t *testing.T) {
	logger.Clear()
	tw := &test.CompareWriter{}

	logger.Write(tw)
	test.ExpectSuccess(t, tw.Compare(""))

	logger.Log(logger.Allow, "test", "this is a test")
	logger.Write(tw)
	test.ExpectSuccess(t, tw.Compare("test: this is a test\n"))

	// clear the test.CompareWriter buffer before continuing, makes comparisons
	// easier to manage
	tw.Clear()

	logger.Logf(logger.Allow, "test2", "this is %s test", "another")
	logger.Write(tw)
	test.ExpectSuccess(t, tw.Compare("test: this is a test\ntest2: this is another test\n"))

	// asking for too many entries in a Tail() should be okay
	tw.Clear()
	logger.Tail(tw, 100)
	test.ExpectSuccess(t, tw.Compare("test: this is a test\ntest2: this is another test\n"))

	// asking for fewer entries is okay too
	tw.Clear()
	logger.Tail(tw, 1)
	test.ExpectSuccess(t, tw.Compare("test2: this is another test\n"))

	// and no entries
	tw.Clear()
	logger.Tail(tw, 0)
	test.ExpectSuccess(t, tw.Compare(""))
}

func TestRepeatedEntries(t *testing.T) {
	logger.Clear()
	tw := &test.CompareWriter{}

	logger.Log(logger.Allow, "controller", "colour patch")
	logger.Log(logger.Allow, "controller", "colour patch")
	logger.Log(logger.Allow, "controller", "colour patch")
	logger.Write(tw)
	test.ExpectSuccess(t, tw.Compare("controller: colour patch (repeat x3)\n"))
}

func TestWriteRecent(t *testing.T) {
	logger.Clear()
	tw := &test.CompareWriter{}

	logger.Log(logger.Allow, "a", "one")
	logger.WriteRecent(tw)
	test.ExpectSuccess(t, tw.Compare("a: one\n"))

	tw.Clear()
	logger.Log(logger.Allow, "b", "two")
	logger.WriteRecent(tw)
	test.ExpectSuccess(t, tw.Compare("b: two\n"))

	tw.Clear()
	logger.WriteRecent(tw)
	test.ExpectSuccess(t, tw.Compare(""))
}

func TestEcho(t *testing.T) {
	logger.Clear()
	tw := &test.CompareWriter{}

	logger.SetEcho(tw, false)
	defer logger.SetEcho(nil, false)

	logger.Log(logger.Allow, "echo", "hello")
	test.ExpectSuccess(t, tw.Compare("echo: hello\n"))
}
