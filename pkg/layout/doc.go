// Package layout locates the input files of an expansion study.
//
// A Layout is either derived from a study directory with FromStudy:
//
//	<root>/user/expansion/candidates.ini
//	<root>/user/expansion/settings.ini
//	<root>/user/expansion/capa/          profiles and yearly weights
//
// or read from a YAML or TOML file with Load:
//
//	candidates: inputs/candidates.ini
//	settings: inputs/settings.ini
//	capacityDir: inputs/capa
//	weightsDir: inputs/weights   # optional, defaults to capacityDir
//
// The checking engines receive CapacityFile and WeightsFile as resolvers and
// never build paths themselves.
package layout
