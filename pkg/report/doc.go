// Package report describes the outcome of an xpcheck run.
//
// A Report carries a Kubernetes-style header (kind, apiVersion, metadata), a
// run ID, the overall status, and one Check per validated file. A failed
// Check holds a Diagnostic built from the structured error that rejected
// the file; a passed candidates Check lists the pruned candidates and the
// backup made before the file was rewritten.
//
//	r := report.New(report.KindStudyReport, version)
//	r.Pass("candidates", path, pruned, backup)
//	r.Fail("settings", path, err)
//	serializer.NewStdoutWriter(serializer.FormatYAML).Serialize(ctx, r.Finish())
package report
