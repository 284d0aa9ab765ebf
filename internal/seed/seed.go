// Package seed holds the fixed mock dataset the storefront starts from.
package seed

import (
	"time"

	"github.com/zarnosh/My-E-comerce-Store/pkg/enums"
	"github.com/zarnosh/My-E-comerce-Store/pkg/models"
)

// Dataset returns a fresh copy of the seed collections on every call.
func Dataset() models.Dataset {
	return models.Dataset{
		Products:   products(),
		Categories: categories(),
		Users:      users(),
		Orders:     orders(),
		TradeAreas: tradeAreas(),
		Branches:   branches(),
		Promotions: promotions(),
	}
}

func at(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

func image(id string) string {
	return "https://picsum.photos/seed/" + id + "/600/800"
}

func categories() []models.Category {
	return []models.Category{
		{ID: "1", Name: "Men", Seo: &models.SeoSettings{Title: "Mens Fashion | LuxeThread", Description: "Shop the latest trends in mens clothing."}},
		{ID: "2", Name: "Women", Seo: &models.SeoSettings{Title: "Womens Fashion | LuxeThread", Description: "Discover stylish womens apparel."}},
		{ID: "3", Name: "Kids", Seo: &models.SeoSettings{Title: "Kids Clothing | LuxeThread", Description: "Fun and durable clothing for kids."}},
		{ID: "4", Name: "Accessories", Seo: &models.SeoSettings{Title: "Fashion Accessories | LuxeThread", Description: "Complete your look with our accessories."}},
	}
}

func products() []models.Product {
	return []models.Product{
		{
			ID:          "p1",
			Name:        "Classic Crewneck T-Shirt",
			Description: "A timeless classic, this soft cotton t-shirt is a wardrobe essential. Perfect for layering or wearing on its own.",
			Price:       29.99,
			Category:    "Men",
			ImageURL:    image("p1"),
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"White", "Black", "Navy"},
			Stock:       50,
			Rating:      4.5,
			Reviews: []models.Review{
				{ID: "r1", UserID: "u3", UserName: "Test User", Rating: 5, Comment: "Super soft and fits perfectly!", Date: at("2023-10-15T10:00:00Z")},
				{ID: "r2", UserID: "u1", UserName: "Customer", Rating: 4, Comment: "Great quality, but shrunk a little after washing.", Date: at("2023-10-20T14:30:00Z")},
			},
			Seo: &models.SeoSettings{
				Title:       "Buy Classic Crewneck T-Shirt Online",
				Description: "High-quality cotton crewneck t-shirt for men. Available in white, black, and navy.",
				Keywords:    "t-shirt, crewneck, mens fashion, cotton shirt",
			},
		},
		{
			ID:          "p2",
			Name:        "Slim-Fit Denim Jeans",
			Description: "Crafted from premium stretch denim, these jeans offer a modern slim fit and all-day comfort.",
			Price:       89.99,
			Category:    "Men",
			ImageURL:    image("p2"),
			Sizes:       []string{"30", "32", "34", "36"},
			Colors:      []string{"Indigo", "Black"},
			Stock:       30,
			Rating:      4.8,
			Reviews: []models.Review{
				{ID: "r3", UserID: "u3", UserName: "Test User", Rating: 5, Comment: "Best jeans I have ever owned.", Date: at("2023-11-01T11:00:00Z")},
			},
			Seo: &models.SeoSettings{
				Title:       "Mens Slim-Fit Denim Jeans",
				Description: "Shop for premium stretch slim-fit denim jeans for men. The perfect fit for a modern look.",
				Keywords:    "jeans, denim, mens jeans, slim-fit",
			},
		},
		{
			ID:          "p3",
			Name:        "Floral Print Midi Dress",
			Description: "Elegant and breezy, this midi dress features a vibrant floral print, a flattering waist tie, and a flowing skirt.",
			Price:       129.99,
			Category:    "Women",
			ImageURL:    image("p3"),
			Sizes:       []string{"XS", "S", "M", "L"},
			Colors:      []string{"Rose", "Sky Blue"},
			Stock:       25,
			Rating:      4.2,
			Reviews:     []models.Review{},
		},
		{
			ID:          "p4",
			Name:        "Cashmere V-Neck Sweater",
			Description: "Indulge in the luxury of pure cashmere with this exquisitely soft V-neck sweater. A versatile piece for any occasion.",
			Price:       199.99,
			Category:    "Women",
			ImageURL:    image("p4"),
			Sizes:       []string{"S", "M", "L"},
			Colors:      []string{"Heather Grey", "Beige", "Black"},
			Stock:       8,
			Rating:      5.0,
			Reviews: []models.Review{
				{ID: "r4", UserID: "u1", UserName: "Customer", Rating: 5, Comment: "Worth every penny, incredibly soft.", Date: at("2023-10-25T09:20:00Z")},
			},
		},
		{
			ID:          "p5",
			Name:        "Dinosaur Graphic Hoodie",
			Description: "Fun and cozy, this hoodie with a cool dinosaur graphic will be your kid's new favorite. Made from soft fleece.",
			Price:       45.00,
			Category:    "Kids",
			ImageURL:    image("p5"),
			Sizes:       []string{"4T", "5T", "6"},
			Colors:      []string{"Green", "Blue"},
			Stock:       0,
			Rating:      4.0,
			Reviews:     []models.Review{},
		},
		{
			ID:          "p6",
			Name:        "Leather Crossbody Bag",
			Description: "A chic and practical accessory, this genuine leather crossbody bag has multiple compartments to keep you organized.",
			Price:       149.00,
			Category:    "Accessories",
			ImageURL:    image("p6"),
			Sizes:       []string{"One Size"},
			Colors:      []string{"Tan", "Black"},
			Stock:       20,
			Rating:      4.7,
			Reviews:     []models.Review{},
		},
		{
			ID:          "p7",
			Name:        "Linen Button-Up Shirt",
			Description: "Stay cool and stylish in this breathable linen shirt. Perfect for warm weather and beach vacations.",
			Price:       75.50,
			Category:    "Men",
			ImageURL:    image("p7"),
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"White", "Light Blue", "Khaki"},
			Stock:       35,
			Rating:      4.3,
			Reviews:     []models.Review{},
		},
		{
			ID:          "p8",
			Name:        "High-Waisted Pleated Skirt",
			Description: "A sophisticated pleated skirt that falls just below the knee. Pairs beautifully with blouses or sweaters.",
			Price:       95.00,
			Category:    "Women",
			ImageURL:    image("p8"),
			Sizes:       []string{"XS", "S", "M", "L"},
			Colors:      []string{"Emerald", "Burgundy"},
			Stock:       22,
			Rating:      4.6,
			Reviews:     []models.Review{},
		},
	}
}

func users() []models.User {
	return []models.User{
		{ID: "u1", Email: "customer@example.com", Password: "password123", Role: enums.UserRoleCustomer, Orders: []models.OrderID{"o1"}, Wishlist: []models.ProductID{"p4", "p2"}},
		{ID: "u2", Email: "admin@example.com", Password: "admin123", Role: enums.UserRoleAdmin, Orders: []models.OrderID{}, Wishlist: []models.ProductID{}},
		{ID: "u3", Email: "testuser@example.com", Password: "password123", Role: enums.UserRoleCustomer, Orders: []models.OrderID{}, Wishlist: []models.ProductID{}, IsBlocked: true},
	}
}

func orders() []models.Order {
	janeNY := models.ShippingAddress{Name: "Jane Doe", Address: "123 Fashion Ave", City: "New York", Zip: "10001"}
	return []models.Order{
		{
			ID:     "o1",
			UserID: "u1",
			Items: []models.OrderItem{
				{ProductID: "p1", Name: "Classic Crewneck T-Shirt", Price: 29.99, Quantity: 2, Size: "M", Color: "White"},
				{ProductID: "p3", Name: "Floral Print Midi Dress", Price: 129.99, Quantity: 1, Size: "S", Color: "Rose"},
			},
			Total:           189.97,
			Date:            at("2023-10-26T10:00:00Z"),
			Status:          enums.OrderStatusDelivered,
			ShippingAddress: janeNY,
			PaymentMethod:   enums.PaymentMethodOnline,
		},
		{
			ID:     "o2",
			UserID: "u1",
			Items: []models.OrderItem{
				{ProductID: "p6", Name: "Leather Crossbody Bag", Price: 149.00, Quantity: 1, Size: "One Size", Color: "Tan"},
			},
			Total:           149.00,
			Date:            at("2023-10-28T14:30:00Z"),
			Status:          enums.OrderStatusShipped,
			ShippingAddress: models.ShippingAddress{Name: "Jane Doe", Address: "123 Fashion Ave", City: "Los Angeles", Zip: "90001"},
			PaymentMethod:   enums.PaymentMethodCOD,
		},
		{
			ID:     "o3",
			UserID: "u3",
			Items: []models.OrderItem{
				{ProductID: "p2", Name: "Slim-Fit Denim Jeans", Price: 89.99, Quantity: 1, Size: "32", Color: "Indigo"},
			},
			Total:           89.99,
			Date:            at("2023-11-01T11:00:00Z"),
			Status:          enums.OrderStatusPending,
			ShippingAddress: models.ShippingAddress{Name: "Test User", Address: "456 Tech Rd", City: "Chicago", Zip: "60601"},
			PaymentMethod:   enums.PaymentMethodOnline,
		},
		{
			ID:     "o4",
			UserID: "u1",
			Items: []models.OrderItem{
				{ProductID: "p4", Name: "Cashmere V-Neck Sweater", Price: 199.99, Quantity: 1, Size: "M", Color: "Beige"},
			},
			Total:           199.99,
			Date:            at("2023-11-02T12:00:00Z"),
			Status:          enums.OrderStatusDelivered,
			ShippingAddress: janeNY,
			PaymentMethod:   enums.PaymentMethodOnline,
		},
	}
}

func tradeAreas() []models.TradeArea {
	return []models.TradeArea{
		{ID: "ta1", Name: "Metro Area", Cities: []string{"New York", "Brooklyn", "Queens"}, DeliveryRadiusKm: 25},
		{ID: "ta2", Name: "Tri-State Outskirts", Cities: []string{"Yonkers", "Newark", "Jersey City"}, DeliveryRadiusKm: 50},
	}
}

func branches() []models.Branch {
	return []models.Branch{
		{ID: "b1", Name: "Manhattan Flagship", Address: "5th Avenue", City: "New York", ContactPhone: "212-555-0101", TradeAreaID: "ta1"},
		{ID: "b2", Name: "Brooklyn Boutique", Address: "123 Williamsburg St", City: "Brooklyn", ContactPhone: "718-555-0102", TradeAreaID: "ta1"},
		{ID: "b3", Name: "Newark Hub", Address: "456 Market St", City: "Newark", ContactPhone: "973-555-0103", TradeAreaID: "ta2"},
	}
}

func promotions() []models.Promotion {
	return []models.Promotion{
		{ID: "promo1", Code: "SUMMER20", DiscountPercent: 20, IsActive: true},
		{ID: "promo2", Code: "NEWBIE10", DiscountPercent: 10, IsActive: true},
		{ID: "promo3", Code: "EXPIRED5", DiscountPercent: 5, IsActive: false},
	}
}
