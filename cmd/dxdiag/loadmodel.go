package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fyerfyer/dxdiag/internal/loader"
	"github.com/fyerfyer/dxdiag/internal/model"
)

// loadModel picks a format loader by file extension: ".bench" for the
// ISCAS-85 netlist format, ".xml" for the XML structural description
// (spec §4.B, §4.L). Any other extension is rejected with an error.
func loadModel(path string) (*model.Circuit, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bench":
		return loader.LoadBenchFile(path)
	case ".xml":
		return loader.LoadXMLFile(path)
	default:
		return nil, fmt.Errorf("unrecognized model file extension %q (expected .xml or .bench)", filepath.Ext(path))
	}
}
