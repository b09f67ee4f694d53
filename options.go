package recast

import "github.com/tsawler/recast/layout"

// convertOptions holds configuration for a conversion run.
type convertOptions struct {
	// Input
	password string

	// Page selection (0-indexed). An explicit page list takes precedence
	// over the range when both are set.
	pages     []int
	startPage int
	endPage   int // exclusive; -1 means to the end of the document

	// Output shaping
	templatePath string
	fontPaths    []string

	// Layout tuning
	yThreshold float64
	clustering layout.ClusteringStrategy
}

// defaultOptions returns the default conversion options.
func defaultOptions() convertOptions {
	lc := layout.DefaultConfig()
	return convertOptions{
		startPage:  0,
		endPage:    -1,
		yThreshold: lc.YThreshold,
		clustering: lc.Clustering,
	}
}

// clone creates a deep copy of convertOptions.
func (o convertOptions) clone() convertOptions {
	newOpts := convertOptions{
		password:     o.password,
		startPage:    o.startPage,
		endPage:      o.endPage,
		templatePath: o.templatePath,
		yThreshold:   o.yThreshold,
		clustering:   o.clustering,
	}

	// Deep copy slices so chained converters never share state.
	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}
	if o.fontPaths != nil {
		newOpts.fontPaths = make([]string, len(o.fontPaths))
		copy(newOpts.fontPaths, o.fontPaths)
	}

	return newOpts
}

// layoutConfig builds the reconstruction configuration from the options.
func (o convertOptions) layoutConfig() layout.Config {
	cfg := layout.DefaultConfig()
	if o.yThreshold > 0 {
		cfg.YThreshold = o.yThreshold
	}
	cfg.Clustering = o.clustering
	return cfg
}
