// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect* functions report a failure with t.Errorf() and allow the test to
// continue. The Demand* functions stop the test with t.Fatalf(). Demand
// functions should be used when the value being tested is used in further
// tests and so must be correct.
//
// It is worth describing how the success/failure functions handle the nil
// type because it is not obvious. The nil type is considered a success and
// consequently will cause ExpectFailure to fail and ExpectSuccess to succeed.
// This is because of how errors usually work (nil to indicate no error).
//
// The CompareWriter type implements the io.Writer interface and should be used
// to capture output. The CompareWriter.Compare() function can then be used to
// test for equality.
package test
