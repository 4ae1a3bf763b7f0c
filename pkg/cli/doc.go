// Package cli implements the command-line interface of xpcheck.
//
// # Overview
//
// xpcheck checks the expansion inputs of an investment study before the
// study is solved. It reports rejected inputs with a stable error code and
// the section or option at fault, and removes candidates that cannot be
// built from the candidates file.
//
// # Commands
//
// candidates - Check a candidates file:
//
//	xpcheck candidates --file candidates.ini [--capacity-dir capa]
//
// settings - Check a settings file:
//
//	xpcheck settings --file settings.ini [--weights-dir capa]
//
// study - Check the candidates file, then the settings file, of a study:
//
//	xpcheck study --root ./study
//	xpcheck study --layout layout.yaml
//
// watch - Check a study again after each change of its inputs:
//
//	xpcheck watch --root ./study [--debounce 1s]
//
// # Global Flags
//
//	--log-level     debug, info, warn, error (env XPCHECK_LOG_LEVEL)
//	--env-file      dotenv files to load; the process environment wins
//	--metrics-file  write Prometheus metrics here when the command ends
//
// # Command Flags
//
//	--output, -o     Report file (default: stdout)
//	--format, -t     Report format: yaml, json, table (default: yaml)
//	--fail-on-error  Exit non-zero when an input is rejected
//
// # Exit Status
//
// A rejected input is a result, not a failure of the tool: the report is
// written and the command exits 0 unless --fail-on-error is set. Usage errors
// and I/O failures of the tool itself exit 1.
package cli
