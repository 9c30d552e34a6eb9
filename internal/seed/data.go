// AngelaMos | 2026
// data.go

package seed

import (
	"github.com/dheerghayush/storefront-api/internal/banner"
	"github.com/dheerghayush/storefront-api/internal/catalog"
)

// The fixed storefront dataset. IDs are stable so reseeding keeps product
// links valid.
var categories = []catalog.Category{
	{ID: "1", Name: "Pulses", Slug: "pulses", Image: "https://images.unsplash.com/photo-1705475388190-775066fd69a5?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NTY2NzF8MHwxfHNlYXJjaHwxfHxwdWxzZXN8ZW58MHx8fHwxNzY0MzEyODgyfDA&ixlib=rb-4.1.0&q=85"},
	{ID: "2", Name: "Millets", Slug: "millets", Image: "https://images.unsplash.com/photo-1651241587503-a874db54a1a7?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NDQ2NDF8MHwxfHNlYXJjaHwxfHxtaWxsZXRzfGVufDB8fHx8MTc2NDMxMjg3Nnww&ixlib=rb-4.1.0&q=85"},
	{ID: "3", Name: "Wood Pressed Oil", Slug: "wood-pressed-oil", Image: "https://images.unsplash.com/photo-1474979266404-7eaacbcd87c5?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NDk1Nzd8MHwxfHNlYXJjaHwxfHxjb29raW5nJTIwb2lsc3xlbnwwfHx8fDE3NjQzMTI4OTh8MA&ixlib=rb-4.1.0&q=85"},
	{ID: "4", Name: "Wild Honey", Slug: "wild-honey", Image: "https://images.unsplash.com/photo-1587049352851-8d4e89133924?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NDQ2NDJ8MHwxfHNlYXJjaHwxfHxob25leXxlbnwwfHx8fDE3NjQzMTI4OTN8MA&ixlib=rb-4.1.0&q=85"},
	{ID: "5", Name: "Desi Ghee", Slug: "desi-ghee", Image: "https://images.unsplash.com/photo-1573812461383-e5f8b759d12e?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NDk1Nzl8MHwxfHNlYXJjaHwxfHxnaGVlfGVufDB8fHx8MTc2NDMxMjg4N3ww&ixlib=rb-4.1.0&q=85"},
	{ID: "6", Name: "Skin Care", Slug: "skin-care", Image: "https://images.unsplash.com/photo-1599847935464-fde3827639c2?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NTY2NzF8MHwxfHNlYXJjaHwxfHxuYXR1cmFsJTIwc2tpbmNhcmV8ZW58MHx8fHwxNzY0MzEyOTAzfDA&ixlib=rb-4.1.0&q=85"},
	{ID: "7", Name: "Crockery", Slug: "crockery", Image: "https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?crop=entropy&cs=srgb&fm=jpg&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&ixlib=rb-4.1.0&q=85"},
}

var products = []catalog.Product{
	{
		ID:            "1",
		Name:          "Organic Toor Dal",
		Category:      "pulses",
		Weight:        "500 gms",
		Price:         145,
		OriginalPrice: 175,
		Image:         "https://images.unsplash.com/photo-1723999817243-e18f2904b140?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NTY2NzF8MHwxfHNlYXJjaHwzfHxwdWxzZXN8ZW58MHx8fHwxNzY0MzEyODgyfDA&ixlib=rb-4.1.0&q=85",
		IsBestseller:  true,
	},
	{
		ID:            "2",
		Name:          "Organic Moong Dal",
		Category:      "pulses",
		Weight:        "500 gms",
		Price:         165,
		OriginalPrice: 195,
		Image:         "https://images.pexels.com/photos/1393382/pexels-photo-1393382.jpeg?auto=compress&cs=tinysrgb&w=400",
		IsBestseller:  true,
	},
	{
		ID:            "3",
		Name:          "Organic Chana Dal",
		Category:      "pulses",
		Weight:        "500 gms",
		Price:         120,
		OriginalPrice: 150,
		Image:         "https://images.unsplash.com/photo-1705475388190-775066fd69a5?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NTY2NzF8MHwxfHNlYXJjaHwxfHxwdWxzZXN8ZW58MHx8fHwxNzY0MzEyODgyfDA&ixlib=rb-4.1.0&q=85",
		IsBestseller:  false,
	},
	{
		ID:            "4",
		Name:          "Organic Urad Dal",
		Category:      "pulses",
		Weight:        "500 gms",
		Price:         155,
		OriginalPrice: 185,
		Image:         "https://images.pexels.com/photos/1393382/pexels-photo-1393382.jpeg?auto=compress&cs=tinysrgb&w=400",
		IsBestseller:  false,
	},
	{
		ID:            "5",
		Name:          "Foxtail Millet (Korralu)",
		Category:      "millets",
		Weight:        "500 gms",
		Price:         110,
		OriginalPrice: 140,
		Image:         "https://images.unsplash.com/photo-1651241587503-a874db54a1a7?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NDQ2NDF8MHwxfHNlYXJjaHwxfHxtaWxsZXRzfGVufDB8fHx8MTc2NDMxMjg3Nnww&ixlib=rb-4.1.0&q=85",
		IsBestseller:  true,
	},
	{
		ID:            "6",
		Name:          "Little Millet (Samalu)",
		Category:      "millets",
		Weight:        "500 gms",
		Price:         105,
		OriginalPrice: 130,
		Image:         "https://images.pexels.com/photos/27959280/pexels-photo-27959280.jpeg?auto=compress&cs=tinysrgb&w=400",
		IsBestseller:  true,
	},
	{
		ID:            "7",
		Name:          "Barnyard Millet (Udalu)",
		Category:      "millets",
		Weight:        "500 gms",
		Price:         115,
		OriginalPrice: 145,
		Image:         "https://images.unsplash.com/photo-1651241587503-a874db54a1a7?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NDQ2NDF8MHwxfHNlYXJjaHwxfHxtaWxsZXRzfGVufDB8fHx8MTc2NDMxMjg3Nnww&ixlib=rb-4.1.0&q=85",
		IsBestseller:  false,
	},
	{
		ID:            "8",
		Name:          "Pearl Millet (Bajra)",
		Category:      "millets",
		Weight:        "500 gms",
		Price:         85,
		OriginalPrice: 110,
		Image:         "https://images.pexels.com/photos/27959280/pexels-photo-27959280.jpeg?auto=compress&cs=tinysrgb&w=400",
		IsBestseller:  false,
	},
	{
		ID:            "9",
		Name:          "Wood Pressed Groundnut Oil",
		Category:      "wood-pressed-oil",
		Weight:        "1 Litre",
		Price:         380,
		OriginalPrice: 450,
		Image:         "https://images.unsplash.com/photo-1474979266404-7eaacbcd87c5?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NDk1Nzd8MHwxfHNlYXJjaHwxfHxjb29raW5nJTIwb2lsc3xlbnwwfHx8fDE3NjQzMTI4OTh8MA&ixlib=rb-4.1.0&q=85",
		IsBestseller:  true,
	},
	{
		ID:            "10",
		Name:          "Wood Pressed Coconut Oil",
		Category:      "wood-pressed-oil",
		Weight:        "1 Litre",
		Price:         420,
		OriginalPrice: 500,
		Image:         "https://images.pexels.com/photos/8469436/pexels-photo-8469436.jpeg?auto=compress&cs=tinysrgb&w=400",
		IsBestseller:  true,
	},
	{
		ID:            "11",
		Name:          "Wood Pressed Sesame Oil",
		Category:      "wood-pressed-oil",
		Weight:        "500 ml",
		Price:         290,
		OriginalPrice: 350,
		Image:         "https://images.unsplash.com/photo-1474979266404-7eaacbcd87c5?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NDk1Nzd8MHwxfHNlYXJjaHwxfHxjb29raW5nJTIwb2lsc3xlbnwwfHx8fDE3NjQzMTI4OTh8MA&ixlib=rb-4.1.0&q=85",
		IsBestseller:  false,
	},
	{
		ID:            "12",
		Name:          "Wood Pressed Mustard Oil",
		Category:      "wood-pressed-oil",
		Weight:        "1 Litre",
		Price:         340,
		OriginalPrice: 400,
		Image:         "https://images.pexels.com/photos/8469436/pexels-photo-8469436.jpeg?auto=compress&cs=tinysrgb&w=400",
		IsBestseller:  false,
	},
	{
		ID:            "13",
		Name:          "Raw Wild Forest Honey",
		Category:      "wild-honey",
		Weight:        "500 gms",
		Price:         450,
		OriginalPrice: 550,
		Image:         "https://images.unsplash.com/photo-1587049352851-8d4e89133924?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NDQ2NDJ8MHwxfHNlYXJjaHwxfHxob25leXxlbnwwfHx8fDE3NjQzMTI4OTN8MA&ixlib=rb-4.1.0&q=85",
		IsBestseller:  true,
	},
	{
		ID:            "14",
		Name:          "Himalayan Wild Honey",
		Category:      "wild-honey",
		Weight:        "250 gms",
		Price:         320,
		OriginalPrice: 400,
		Image:         "https://images.pexels.com/photos/33260/honey-sweet-syrup-organic.jpg?auto=compress&cs=tinysrgb&w=400",
		IsBestseller:  true,
	},
	{
		ID:            "15",
		Name:          "Multiflora Wild Honey",
		Category:      "wild-honey",
		Weight:        "500 gms",
		Price:         380,
		OriginalPrice: 470,
		Image:         "https://images.unsplash.com/photo-1587049352851-8d4e89133924?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NDQ2NDJ8MHwxfHNlYXJjaHwxfHxob25leXxlbnwwfHx8fDE3NjQzMTI4OTN8MA&ixlib=rb-4.1.0&q=85",
		IsBestseller:  false,
	},
	{
		ID:            "16",
		Name:          "A2 Desi Cow Ghee",
		Category:      "desi-ghee",
		Weight:        "500 gms",
		Price:         750,
		OriginalPrice: 900,
		Image:         "https://images.unsplash.com/photo-1573812461383-e5f8b759d12e?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NDk1Nzl8MHwxfHNlYXJjaHwxfHxnaGVlfGVufDB8fHx8MTc2NDMxMjg4N3ww&ixlib=rb-4.1.0&q=85",
		IsBestseller:  true,
	},
	{
		ID:            "17",
		Name:          "Bilona Desi Ghee",
		Category:      "desi-ghee",
		Weight:        "500 gms",
		Price:         850,
		OriginalPrice: 1000,
		Image:         "https://images.unsplash.com/photo-1707425197195-240b7ad69047?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NDk1Nzl8MHwxfHNlYXJjaHwyfHxnaGVlfGVufDB8fHx8MTc2NDMxMjg4N3ww&ixlib=rb-4.1.0&q=85",
		IsBestseller:  true,
	},
	{
		ID:            "18",
		Name:          "Buffalo Ghee Traditional",
		Category:      "desi-ghee",
		Weight:        "500 gms",
		Price:         600,
		OriginalPrice: 720,
		Image:         "https://images.unsplash.com/photo-1573812461383-e5f8b759d12e?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NDk1Nzl8MHwxfHNlYXJjaHwxfHxnaGVlfGVufDB8fHx8MTc2NDMxMjg4N3ww&ixlib=rb-4.1.0&q=85",
		IsBestseller:  false,
	},
	{
		ID:            "19",
		Name:          "Natural Aloe Vera Gel",
		Category:      "skin-care",
		Weight:        "200 gms",
		Price:         180,
		OriginalPrice: 220,
		Image:         "https://images.unsplash.com/photo-1599847935464-fde3827639c2?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NTY2NzF8MHwxfHNlYXJjaHwxfHxuYXR1cmFsJTIwc2tpbmNhcmV8ZW58MHx8fHwxNzY0MzEyOTAzfDA&ixlib=rb-4.1.0&q=85",
		IsBestseller:  true,
	},
	{
		ID:            "20",
		Name:          "Herbal Face Pack",
		Category:      "skin-care",
		Weight:        "100 gms",
		Price:         150,
		OriginalPrice: 190,
		Image:         "https://images.unsplash.com/photo-1626783416763-67a92e5e7266?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NTY2Nzd8MHwxfHNlYXJjaHwzfHxuYXR1cmFsJTIwc2tpbmNhcmV8ZW58MHx8fHwxNzY0MzEyOTAzfDA&ixlib=rb-4.1.0&q=85",
		IsBestseller:  true,
	},
	{
		ID:            "21",
		Name:          "Turmeric Body Lotion",
		Category:      "skin-care",
		Weight:        "200 ml",
		Price:         220,
		OriginalPrice: 280,
		Image:         "https://images.unsplash.com/photo-1599847935464-fde3827639c2?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NTY2NzF8MHwxfHNlYXJjaHwxfHxuYXR1cmFsJTIwc2tpbmNhcmV8ZW58MHx8fHwxNzY0MzEyOTAzfDA&ixlib=rb-4.1.0&q=85",
		IsBestseller:  false,
	},
	{
		ID:            "22",
		Name:          "Terracotta Water Pot",
		Category:      "crockery",
		Weight:        "5 Litres",
		Price:         450,
		OriginalPrice: 550,
		Image:         "https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?crop=entropy&cs=srgb&fm=jpg&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&ixlib=rb-4.1.0&q=85",
		IsBestseller:  true,
	},
	{
		ID:            "23",
		Name:          "Brass Cooking Utensils Set",
		Category:      "crockery",
		Weight:        "Set of 3",
		Price:         1200,
		OriginalPrice: 1500,
		Image:         "https://images.unsplash.com/photo-1584568694244-14fbdf83bd30?crop=entropy&cs=srgb&fm=jpg&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&ixlib=rb-4.1.0&q=85",
		IsBestseller:  false,
	},
	{
		ID:            "24",
		Name:          "Clay Kadai Traditional",
		Category:      "crockery",
		Weight:        "Medium",
		Price:         350,
		OriginalPrice: 420,
		Image:         "https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?crop=entropy&cs=srgb&fm=jpg&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&ixlib=rb-4.1.0&q=85",
		IsBestseller:  false,
	},
}

var banners = []banner.Banner{
	{
		ID:          "1",
		Title:       "Pure & Natural",
		Subtitle:    "Wood Pressed Oils",
		Description: "Experience the authentic taste and health benefits of traditionally extracted oils",
		BgColor:     "#4CAF50",
		Image:       "https://images.unsplash.com/photo-1474979266404-7eaacbcd87c5?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NDk1Nzd8MHwxfHNlYXJjaHwxfHxjb29raW5nJTIwb2lsc3xlbnwwfHx8fDE3NjQzMTI4OTh8MA&ixlib=rb-4.1.0&q=85",
		ButtonText:  "Shop Now",
		ButtonLink:  "/products",
		Order:       0,
	},
	{
		ID:          "2",
		Title:       "Organic Millets",
		Subtitle:    "For Healthy Living",
		Description: "Unpolished, chemical-free millets sourced directly from farmers",
		BgColor:     "#FF9800",
		Image:       "https://images.unsplash.com/photo-1651241587503-a874db54a1a7?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NDQ2NDF8MHwxfHNlYXJjaHwxfHxtaWxsZXRzfGVufDB8fHx8MTc2NDMxMjg3Nnww&ixlib=rb-4.1.0&q=85",
		ButtonText:  "Explore",
		ButtonLink:  "/products",
		Order:       1,
	},
	{
		ID:          "3",
		Title:       "A2 Desi Ghee",
		Subtitle:    "Traditional Bilona Method",
		Description: "Pure cow ghee made using the ancient bilona churning process",
		BgColor:     "#8BC34A",
		Image:       "https://images.unsplash.com/photo-1573812461383-e5f8b759d12e?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NDk1Nzl8MHwxfHNlYXJjaHwxfHxnaGVlfGVufDB8fHx8MTc2NDMxMjg4N3ww&ixlib=rb-4.1.0&q=85",
		ButtonText:  "Shop Now",
		ButtonLink:  "/products",
		Order:       2,
	},
}
