// Package batch applies the renamer and the tagger to a whole directory.
//
// # Manager
//
// Renaming happens in two phases:
//
//  1. Plan computes every new name concurrently; nothing on disk changes
//  2. Apply renames the files one at a time, asking a ConfirmFunc first
//
//	manager, err := batch.NewManager(settings, func(event batch.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//	plans, err := manager.Plan(ctx, dir)
//	stats, err := manager.Apply(ctx, dir, plans, func(p batch.Plan) bool {
//	    return askUser(p.OldName, p.NewName)
//	})
//
// Files without an MP3 suffix are skipped, files whose names do not match
// the configured format are reported as failed; neither stops the batch.
// Two files that would end up with the same name are both reported instead
// of one overwriting the other.
//
// # Tagging
//
// Tag writes ID3 tags derived from file and directory names:
//
//	stats, err := manager.Tag(ctx, dir)
//
// # Concurrency
//
// Settings.Workers bounds the goroutines used by Plan and Tag. Apply is
// always sequential so that renames never race with each other.
package batch
