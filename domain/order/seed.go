package order

// SeedOrders returns the initial order book. Item snapshots reference the
// seeded camera catalog by id with prices frozen at purchase time.
func SeedOrders() []*Order {
	return []*Order{
		{
			ID:           "101",
			CustomerID:   "1",
			CustomerName: "Alice Johnson",
			Items: []CartItem{
				{ProductID: "1", Name: "HD Dome Security Camera", Price: 150, Quantity: 1},
			},
			Total:            1150,
			Status:           StatusCompleted,
			Date:             "2023-10-15",
			ShippingAddress:  "123 Maple St, Springfield",
			TechnicianID:     "T1",
			TechnicianName:   "Mike Ross",
			InstallationDate: "2023-10-18",
			InstallationNotes: "Customer requested camera to cover the front porch.",
			InstallationImages: []string{
				"https://picsum.photos/seed/install1/400/300",
				"https://picsum.photos/seed/install2/400/300",
			},
			CustomerFeedback: "Great service, very professional.",
		},
		{
			ID:           "102",
			CustomerID:   "2",
			CustomerName: "Bob Smith",
			Items: []CartItem{
				{ProductID: "3", Name: "PTZ (Pan-Tilt-Zoom) Camera", Price: 450, Quantity: 1},
				{ProductID: "4", Name: "Wireless Smart Camera", Price: 120, Quantity: 2},
			},
			Total:            690,
			Status:           StatusInstallationScheduled,
			Date:             "2023-10-18",
			ShippingAddress:  "456 Oak Ave, Metropolis",
			TechnicianID:     "T2",
			TechnicianName:   "Harvey Specter",
			InstallationDate: "2023-10-25",
		},
		{
			ID:           "103",
			CustomerID:   "1",
			CustomerName: "Alice Johnson",
			Items: []CartItem{
				{ProductID: "2", Name: "Outdoor Bullet Camera", Price: 180, Quantity: 4},
			},
			Total:           720,
			Status:          StatusShipped,
			Date:            "2023-10-20",
			ShippingAddress: "123 Maple St, Springfield",
		},
		{
			ID:           "104",
			CustomerID:   "3",
			CustomerName: "Charlie Brown",
			Items: []CartItem{
				{ProductID: "5", Name: "4K Ultra HD IP Camera", Price: 350, Quantity: 1},
			},
			Total:           350,
			Status:          StatusProcessing,
			Date:            "2023-10-21",
			ShippingAddress: "789 Pine Ln, Gotham",
		},
		{
			ID:           "105",
			CustomerID:   "2",
			CustomerName: "Bob Smith",
			Items: []CartItem{
				{ProductID: "8", Name: "360° Fisheye Camera", Price: 380, Quantity: 2},
			},
			Total:           440,
			Status:          StatusPending,
			Date:            "2023-10-22",
			ShippingAddress: "456 Oak Ave, Metropolis",
		},
	}
}
