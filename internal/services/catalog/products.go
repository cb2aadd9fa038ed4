package catalog

import "github.com/apsaracreations/saree-shop/internal/models"

func defaultProducts() []models.Product {
	return []models.Product{
		{
			ID:               1,
			Name:             "Silk Banarasi Saree",
			Price:            "₹25,000",
			OriginalPrice:    "₹35,000",
			Image:            "../assets/uploads/product-1.webp",
			Badge:            "Best Seller",
			Colors:           []string{"red", "maroon", "blue", "green"},
			Description:      "Exquisite Silk Banarasi saree featuring intricate handwoven patterns and traditional motifs. This masterpiece showcases the rich heritage of Varanasi's silk weaving tradition with luxurious gold zari work.",
			Fabric:           "Pure Silk",
			Work:             "Handwoven Zari",
			Occasion:         "Wedding, Festival",
			CareInstructions: "Dry clean only",
			Blouse:           "Unstitched blouse piece included",
			Origin:           "Varanasi, India",
			Reviews: []models.Review{
				{Name: "Priya Sharma", Rating: 5, Comment: "Absolutely stunning saree! The quality is exceptional and the design is breathtaking."},
				{Name: "Meera Patel", Rating: 5, Comment: "Perfect for my daughter's wedding. Everyone complimented the beautiful work."},
			},
		},
		{
			ID:               2,
			Name:             "Designer Georgette Saree",
			Price:            "₹18,000",
			OriginalPrice:    "₹22,500",
			Image:            "../assets/uploads/product-2.webp",
			Badge:            "-20%",
			Colors:           []string{"pink", "purple", "yellow", "white"},
			Description:      "Contemporary designer georgette saree with modern prints and elegant draping. Perfect blend of tradition and contemporary fashion for the modern woman.",
			Fabric:           "Premium Georgette",
			Work:             "Digital Print",
			Occasion:         "Party, Office",
			CareInstructions: "Hand wash or dry clean",
			Blouse:           "Stitched blouse available",
			Origin:           "Mumbai, India",
			Reviews: []models.Review{
				{Name: "Anita Desai", Rating: 4, Comment: "Love the lightweight fabric and beautiful colors. Great for office wear."},
				{Name: "Sneha Kapoor", Rating: 5, Comment: "Excellent quality and fast delivery. Highly recommended!"},
			},
		},
		{
			ID:               3,
			Name:             "Cotton Handloom Saree",
			Price:            "₹12,000",
			Image:            "../assets/uploads/product-3.webp",
			Badge:            "New",
			Colors:           []string{"orange", "yellow", "green", "red"},
			Description:      "Authentic handloom cotton saree crafted by skilled artisans. Comfortable, breathable, and perfect for daily wear with traditional charm.",
			Fabric:           "Pure Cotton",
			Work:             "Handloom",
			Occasion:         "Daily wear, Casual",
			CareInstructions: "Machine wash cold",
			Blouse:           "Unstitched blouse piece included",
			Origin:           "West Bengal, India",
			Reviews: []models.Review{
				{Name: "Lakshmi Iyer", Rating: 5, Comment: "Comfortable cotton saree with beautiful handloom work. Value for money!"},
				{Name: "Kavitha Rao", Rating: 4, Comment: "Good quality cotton. Perfect for everyday wear."},
			},
		},
		{
			ID:               4,
			Name:             "Embroidered Net Saree",
			Price:            "₹30,000",
			OriginalPrice:    "₹55,000",
			Image:            "../assets/uploads/product-4.webp",
			Badge:            "-45%",
			Colors:           []string{"black", "maroon", "blue", "white"},
			Description:      "Luxurious net saree with intricate embroidery work. Features delicate threadwork and sequins that create a mesmerizing effect perfect for special occasions.",
			Fabric:           "Premium Net",
			Work:             "Hand Embroidery",
			Occasion:         "Wedding, Reception",
			CareInstructions: "Dry clean only",
			Blouse:           "Designer blouse included",
			Origin:           "Lucknow, India",
			Reviews: []models.Review{
				{Name: "Deepika Singh", Rating: 5, Comment: "Absolutely gorgeous! The embroidery work is phenomenal."},
				{Name: "Pooja Gupta", Rating: 5, Comment: "Perfect for my reception. Everyone loved it!"},
			},
		},
		{
			ID:               5,
			Name:             "Traditional Kanjivaram Saree",
			Price:            "₹35,000",
			OriginalPrice:    "₹42,000",
			Image:            "../assets/uploads/product-5.webp",
			Badge:            "Best Seller",
			Colors:           []string{"maroon", "red", "yellow", "green"},
			Description:      "Authentic Kanjivaram silk saree from Tamil Nadu featuring traditional temple motifs and rich gold zari border. A timeless piece for special occasions.",
			Fabric:           "Pure Kanjivaram Silk",
			Work:             "Traditional Zari",
			Occasion:         "Wedding, Temple",
			CareInstructions: "Dry clean only",
			Blouse:           "Matching blouse piece included",
			Origin:           "Kanchipuram, Tamil Nadu",
			Reviews: []models.Review{
				{Name: "Radha Krishnan", Rating: 5, Comment: "Authentic Kanjivaram with beautiful temple motifs. Excellent quality!"},
				{Name: "Sunita Reddy", Rating: 5, Comment: "Traditional and elegant. Perfect for weddings."},
			},
		},
		{
			ID:               6,
			Name:             "Chiffon Designer Saree",
			Price:            "₹22,000",
			OriginalPrice:    "₹26,000",
			Image:            "../assets/uploads/product-6.webp",
			Badge:            "-15%",
			Colors:           []string{"blue", "purple", "pink", "white"},
			Description:      "Elegant chiffon saree with contemporary design and flowing drape. Features subtle embellishments and modern patterns for a sophisticated look.",
			Fabric:           "Premium Chiffon",
			Work:             "Designer Print",
			Occasion:         "Party, Function",
			CareInstructions: "Dry clean recommended",
			Blouse:           "Designer blouse included",
			Origin:           "Delhi, India",
			Reviews: []models.Review{
				{Name: "Nisha Agarwal", Rating: 4, Comment: "Beautiful drape and lovely colors. Perfect for parties."},
				{Name: "Ritika Jain", Rating: 5, Comment: "Elegant and comfortable. Great quality chiffon."},
			},
		},
		{
			ID:               7,
			Name:             "Bandhani Print Saree",
			Price:            "₹15,000",
			Image:            "../assets/uploads/product-7.webp",
			Badge:            "New",
			Colors:           []string{"yellow", "orange", "red", "green"},
			Description:      "Traditional Bandhani print saree showcasing the ancient tie-dye technique from Gujarat. Vibrant colors and authentic patterns make it perfect for festivals.",
			Fabric:           "Pure Silk",
			Work:             "Bandhani Tie-Dye",
			Occasion:         "Festival, Celebration",
			CareInstructions: "Dry clean only",
			Blouse:           "Contrasting blouse piece included",
			Origin:           "Gujarat, India",
			Reviews: []models.Review{
				{Name: "Meenakshi Shah", Rating: 5, Comment: "Authentic Bandhani work with vibrant colors. Love it!"},
				{Name: "Kiran Patel", Rating: 4, Comment: "Beautiful traditional saree perfect for festivals."},
			},
		},
		{
			ID:               8,
			Name:             "Pure Mysore Silk Saree",
			Price:            "₹28,000",
			OriginalPrice:    "₹40,000",
			Image:            "../assets/uploads/product-8.webp",
			Badge:            "-30%",
			Colors:           []string{"purple", "maroon", "blue", "black"},
			Description:      "Authentic Mysore silk saree known for its smooth texture and lustrous finish. Features traditional motifs and rich golden border.",
			Fabric:           "Pure Mysore Silk",
			Work:             "Traditional Weaving",
			Occasion:         "Wedding, Formal",
			CareInstructions: "Dry clean only",
			Blouse:           "Matching silk blouse included",
			Origin:           "Mysore, Karnataka",
			Reviews: []models.Review{
				{Name: "Latha Murthy", Rating: 5, Comment: "Genuine Mysore silk with excellent finish. Highly recommended!"},
				{Name: "Shanti Rao", Rating: 5, Comment: "Beautiful saree with rich texture. Perfect for special occasions."},
			},
		},
		{
			ID:               9,
			Name:             "Tussar Silk Saree",
			Price:            "₹20,000",
			OriginalPrice:    "₹27,000",
			Image:            "../assets/uploads/product-9.webp",
			Badge:            "-25%",
			Colors:           []string{"golden", "beige", "brown", "cream"},
			Description:      "Natural Tussar silk saree with earthy tones and organic texture. Features hand-painted motifs and eco-friendly dyeing process.",
			Fabric:           "Pure Tussar Silk",
			Work:             "Hand Painted",
			Occasion:         "Eco-friendly events, Casual",
			CareInstructions: "Gentle hand wash or dry clean",
			Blouse:           "Natural cotton blouse included",
			Origin:           "Jharkhand, India",
			Reviews: []models.Review{
				{Name: "Gayatri Devi", Rating: 4, Comment: "Love the natural texture and earthy colors. Eco-friendly choice!"},
				{Name: "Vidya Sharma", Rating: 5, Comment: "Unique Tussar silk with beautiful hand-painted work."},
			},
		},
	}
}
