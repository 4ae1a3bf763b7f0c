// Package settings loads and checks the settings file of an expansion study.
//
// The settings file is a flat list of key=value lines. Every option written
// in the file is checked against the settings schema (known name, primitive
// type, legal value). Options absent from the file take the schema default.
//
// When yearly_weights is set, cut_type must not be "average" and the named
// weights file must hold non-negative values with a positive sum.
//
//	engine := settings.New(settings.WithResolver(layout.WeightsFile))
//	doc, err := engine.ValidateFile("user/expansion/settings.ini")
package settings
