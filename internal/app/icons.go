package app

// Target is one raster in the output set.
type Target struct {
	Name        string
	Size        int
	IncludeText bool
}

// IconSet lists the PNG app icons and the frames packed into favicon.ico.
type IconSet struct {
	Icons   []Target
	Favicon []Target
}

func DefaultIconSet() IconSet {
	return IconSet{
		Icons: []Target{
			{Name: "icon-72.png", Size: 72, IncludeText: true},
			{Name: "icon-96.png", Size: 96, IncludeText: true},
			{Name: "icon-144.png", Size: 144, IncludeText: true},
			{Name: "apple-touch-icon.png", Size: 180, IncludeText: true},
			{Name: "icon-192.png", Size: 192, IncludeText: true},
			{Name: "icon-512.png", Size: 512, IncludeText: true},
		},
		// Favicons never carry text.
		Favicon: []Target{
			{Name: "favicon-16", Size: 16},
			{Name: "favicon-32", Size: 32},
			{Name: "favicon-48", Size: 48},
		},
	}
}
