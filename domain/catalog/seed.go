package catalog

// SeedProducts returns the initial camera catalog.
func SeedProducts() []*Product {
	return []*Product{
		{
			ID:          "1",
			Name:        "HD Dome Security Camera",
			Description: "A discreet, vandal-proof dome camera perfect for indoor and outdoor surveillance. 1080p resolution.",
			Price:       150,
			Stock:       25,
			Category:    "Dome Cameras",
			ImageURLs: []string{
				"images/product1.jpg",
				"https://picsum.photos/seed/domecam1/800/600",
				"https://picsum.photos/seed/domecam2/800/600",
				"https://picsum.photos/seed/domecam3/800/600",
			},
		},
		{
			ID:          "2",
			Name:        "Outdoor Bullet Camera",
			Description: "Weatherproof bullet camera with night vision. A visible deterrent for intruders.",
			Price:       180,
			Stock:       30,
			Category:    "Bullet Cameras",
			ImageURLs: []string{
				"images/product2.jpg",
				"https://picsum.photos/seed/bulletcam1/800/600",
				"https://picsum.photos/seed/bulletcam2/800/600",
			},
		},
		{
			ID:          "3",
			Name:        "PTZ (Pan-Tilt-Zoom) Camera",
			Description: "Cover large areas with a single camera. Remote directional and zoom control.",
			Price:       450,
			Stock:       15,
			Category:    "PTZ Cameras",
			ImageURLs: []string{
				"images/product3.jpg",
				"https://picsum.photos/seed/ptzcam1/800/600",
				"https://picsum.photos/seed/ptzcam2/800/600",
				"https://picsum.photos/seed/ptzcam3/800/600",
				"https://picsum.photos/seed/ptzcam4/800/600",
			},
		},
		{
			ID:          "4",
			Name:        "Wireless Smart Camera",
			Description: "Easy to install wireless camera with app integration and two-way audio.",
			Price:       120,
			Stock:       50,
			Category:    "Wireless Cameras",
			ImageURLs: []string{
				"images/product4.jpg",
				"https://picsum.photos/seed/wirelesscam1/800/600",
			},
		},
		{
			ID:          "5",
			Name:        "4K Ultra HD IP Camera",
			Description: "Capture crystal-clear video with 4K resolution. Connects to your network for remote viewing.",
			Price:       350,
			Stock:       20,
			Category:    "IP Cameras",
			ImageURLs: []string{
				"https://picsum.photos/seed/4kcam1/800/600",
				"https://picsum.photos/seed/4kcam2/800/600",
			},
		},
		{
			ID:          "6",
			Name:        "Professional Box Camera",
			Description: "A versatile box camera with interchangeable lenses for professional-grade security.",
			Price:       600,
			Stock:       10,
			Category:    "Box Cameras",
			ImageURLs: []string{
				"https://picsum.photos/seed/boxcam1/800/600",
			},
		},
		{
			ID:          "7",
			Name:        "Day/Night Vision Camera",
			Description: "High-performance camera that provides clear images in both daylight and complete darkness.",
			Price:       220,
			Stock:       40,
			Category:    "Specialty Cameras",
			ImageURLs: []string{
				"https://picsum.photos/seed/nightcam1/800/600",
				"https://picsum.photos/seed/nightcam2/800/600",
			},
		},
		{
			ID:          "8",
			Name:        "360° Fisheye Camera",
			Description: "Get a complete panoramic view with no blind spots. Ideal for wide open areas.",
			Price:       380,
			Stock:       18,
			Category:    "Specialty Cameras",
			ImageURLs: []string{
				"https://picsum.photos/seed/fisheyecam1/800/600",
				"https://picsum.photos/seed/fisheyecam2/800/600",
				"https://picsum.photos/seed/fisheyecam3/800/600",
			},
		},
	}
}
