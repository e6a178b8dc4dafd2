package presets

// DimensionConfig is the per-dimension customization a user layers over the
// built-in catalog. Built-in options are never removed from the catalog
// itself: deleting one records its value in Deleted (soft delete), which
// hides it from pickers and from the random pool. Custom options are user
// rows and are hard-removed by dropping them from Custom.
type DimensionConfig struct {
	Custom   []Option `json:"custom,omitempty"`
	Deleted  []string `json:"deleted,omitempty"`
	Disabled []string `json:"disabled,omitempty"`
}

// VariableConfig maps dimension keys to their customization.
type VariableConfig map[string]DimensionConfig

// WithConfig returns a derived catalog with the customization applied:
// soft-deleted and disabled built-in options removed from each dimension's
// option list, custom options appended. The receiver is left untouched.
func (c *Catalog) WithConfig(cfg VariableConfig) *Catalog {
	if len(cfg) == 0 {
		return c
	}

	dims := make([]Dimension, 0, len(c.order))
	for _, key := range c.order {
		dim := c.dims[key]
		dc, ok := cfg[key]
		if !ok {
			dims = append(dims, dim)
			continue
		}

		hidden := make(map[string]bool, len(dc.Deleted)+len(dc.Disabled))
		for _, v := range dc.Deleted {
			hidden[v] = true
		}
		for _, v := range dc.Disabled {
			hidden[v] = true
		}

		options := make([]Option, 0, len(dim.Options)+len(dc.Custom))
		for _, o := range dim.Options {
			if !hidden[o.Value] {
				options = append(options, o)
			}
		}
		for _, o := range dc.Custom {
			o.Custom = true
			options = append(options, o)
		}

		dim.Options = options
		dims = append(dims, dim)
	}
	return newCatalog(dims)
}
