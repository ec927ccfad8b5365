// Package async runs functions in their own goroutine and hands back a Future.
//
// The validator package uses it to evaluate slow field checks concurrently:
//
//	f := async.Async(ctx, value, check)
//	ok, err := f.Await()
//
// A Future started with an already cancelled context completes immediately
// with the context error.
package async
