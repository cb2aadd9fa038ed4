package recommend

import "github.com/apsaracreations/saree-shop/internal/models"

// entry — строка таблицы рекомендаций.
type entry struct {
	bodyType string
	occasion string
	fabric   string
	rec      models.Recommendation
}

// table упорядочена: порядок строк внутри типа фигуры задаёт порядок альтернатив.
var table = []entry{
	{"pear", "wedding", "silk", models.Recommendation{
		Name:        "Heavy Silk Saree with Embellished Blouse",
		Description: "Perfect for pear body types! The heavy silk fabric with rich embellishments on the blouse draws attention upward, balancing your proportions beautifully.",
		Features:    []string{"Detailed blouse work", "Heavy fabric drape", "Rich colors", "Traditional appeal"},
		Image:       "../assets/images/recommendation1.png",
	}},
	{"pear", "wedding", "georgette", models.Recommendation{
		Name:        "Georgette Saree with Statement Blouse",
		Description: "Flowing georgette with an eye-catching blouse creates a stunning silhouette that flatters pear-shaped figures perfectly.",
		Features:    []string{"Flowing drape", "Statement blouse", "Elegant fall", "Comfortable wear"},
		Image:       "../assets/images/recommendation2.png",
	}},
	{"pear", "party", "chiffon", models.Recommendation{
		Name:        "Designer Chiffon with Sequin Work",
		Description: "Light chiffon with sequin detailing on the blouse area creates visual interest upward, perfect for your body type.",
		Features:    []string{"Lightweight fabric", "Sequin embellishments", "Modern design", "Party perfect"},
		Image:       "../assets/images/recommendation3.png",
	}},
	{"pear", "party", "georgette", models.Recommendation{
		Name:        "Printed Georgette with Contrast Blouse",
		Description: "Beautiful prints with contrasting blouse colors enhance your upper body proportions elegantly.",
		Features:    []string{"Vibrant prints", "Contrast elements", "Flattering drape", "Stylish appeal"},
		Image:       "../assets/images/recommendation4.png",
	}},
	{"pear", "casual", "cotton", models.Recommendation{
		Name:        "Cotton Saree with Embroidered Blouse",
		Description: "Comfortable cotton with beautiful embroidered blouse work - ideal for daily wear while maintaining elegance.",
		Features:    []string{"Breathable fabric", "Easy maintenance", "Elegant embroidery", "Daily wear perfect"},
		Image:       "../assets/images/recommendation5.png",
	}},
	{"apple", "wedding", "silk", models.Recommendation{
		Name:        "Silk Saree with Empire Waist Blouse",
		Description: "Beautiful silk saree with an empire waist blouse that sits just below the bust, creating a flattering silhouette for apple body types.",
		Features:    []string{"Empire waist design", "Luxurious silk", "Elegant draping", "Traditional glamour"},
		Image:       "../assets/images/recommendation1.png",
	}},
	{"apple", "office", "cotton", models.Recommendation{
		Name:        "Structured Cotton with Tailored Blouse",
		Description: "Professional cotton saree with a well-tailored blouse that provides structure and confidence for the workplace.",
		Features:    []string{"Professional appearance", "Structured fit", "Breathable comfort", "Work appropriate"},
		Image:       "../assets/images/recommendation3.png",
	}},
	{"rectangle", "wedding", "silk", models.Recommendation{
		Name:        "Silk Saree with Peplum Blouse",
		Description: "Stunning silk saree paired with a peplum blouse that creates curves and adds dimension to your straight silhouette.",
		Features:    []string{"Curve-creating peplum", "Rich silk texture", "Dimensional design", "Elegant appeal"},
		Image:       "../assets/images/recommendation1.png",
	}},
	{"rectangle", "party", "georgette", models.Recommendation{
		Name:        "Ruffled Georgette with Fitted Blouse",
		Description: "Beautiful ruffled georgette saree with a fitted blouse that adds texture and creates the illusion of curves.",
		Features:    []string{"Ruffle detailing", "Fitted silhouette", "Texture play", "Party glamour"},
		Image:       "../assets/images/recommendation2.png",
	}},
	{"hourglass", "wedding", "silk", models.Recommendation{
		Name:        "Classic Silk Saree with Fitted Blouse",
		Description: "Timeless silk saree with a perfectly fitted blouse that celebrates your natural curves beautifully.",
		Features:    []string{"Curve celebrating", "Perfect fit", "Classic elegance", "Timeless appeal"},
		Image:       "../assets/images/recommendation1.png",
	}},
	{"hourglass", "party", "chiffon", models.Recommendation{
		Name:        "Draped Chiffon with Corset Blouse",
		Description: "Elegantly draped chiffon with a corset-style blouse that enhances your natural hourglass figure perfectly.",
		Features:    []string{"Corset styling", "Natural enhancement", "Elegant draping", "Figure flattering"},
		Image:       "../assets/images/recommendation3.png",
	}},
	{"petite", "wedding", "chiffon", models.Recommendation{
		Name:        "Lightweight Chiffon with Minimal Border",
		Description: "Delicate chiffon saree with minimal border work that doesn't overwhelm your petite frame while maintaining elegance.",
		Features:    []string{"Lightweight feel", "Minimal borders", "Delicate design", "Petite friendly"},
		Image:       "../assets/images/recommendation2.png",
	}},
	{"petite", "party", "georgette", models.Recommendation{
		Name:        "Georgette with Small Prints",
		Description: "Beautiful georgette with small, proportionate prints that complement your petite stature perfectly.",
		Features:    []string{"Proportionate prints", "Lightweight fabric", "Petite scaling", "Elegant design"},
		Image:       "../assets/images/recommendation4.png",
	}},
}

var fallbacks = []models.Suggestion{
	{
		Recommendation: models.Recommendation{
			Name:        "Classic Silk Saree",
			Description: "A timeless classic that works beautifully for your body type and preferences.",
			Features:    []string{"Versatile design", "Classic appeal", "Elegant draping", "Suitable for all"},
			Image:       "../assets/images/recommendation1.png",
		},
		Priority: models.PriorityFallback,
		Match:    MatchClassic,
	},
	{
		Recommendation: models.Recommendation{
			Name:        "Designer Georgette Saree",
			Description: "Flowing georgette that creates beautiful movement and flatters most body types.",
			Features:    []string{"Flowing fabric", "Universal appeal", "Easy to drape", "Comfortable wear"},
			Image:       "../assets/images/recommendation2.png",
		},
		Priority: models.PriorityFallback,
		Match:    MatchPopular,
	},
}
