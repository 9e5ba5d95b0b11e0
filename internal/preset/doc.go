package preset

// Package preset reads and writes preset libraries: named sets of UDIM
// tiles that artists share as YAML files and import into the preset bar.
