// Package watch re-runs a check when input files change.
//
// A Watcher observes the parent directories of its files with fsnotify, so
// editors that save by rename and the atomic rewrite of a pruned candidates
// file are both seen. Bursts of events are collapsed into a single call made
// once the files have been quiet for the debounce period. Calls are made from
// the Run loop and never overlap.
//
//	w, err := watch.New(lay.Files(), func(ctx context.Context) error {
//	    return runStudy(ctx, lay)
//	})
//	if err != nil {
//	    return err
//	}
//	return w.Run(ctx)
package watch
