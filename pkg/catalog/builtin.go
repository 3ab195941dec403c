package catalog

const (
	Heritage  Theme = "heritage"
	Nightlife Theme = "nightlife"
	Adventure Theme = "adventure"
	Wellness  Theme = "wellness"
	Shopping  Theme = "shopping"
	Food      Theme = "food"
)

// Builtin returns the catalog bundled with the application.
func Builtin() *Catalog {
	return New(builtinDestinations, builtinThemes, builtinActivities, builtinPlaces...)
}

var builtinThemes = []Theme{Heritage, Nightlife, Adventure, Wellness, Shopping, Food}

var builtinDestinations = []Destination{
	{
		Id:          "goa",
		Name:        "Goa",
		Region:      "Goa",
		Country:     "India",
		Description: "Beautiful beaches and vibrant nightlife",
		Image:       "https://images.pexels.com/photos/1450353/pexels-photo-1450353.jpeg",
	},
	{
		Id:          "kerala",
		Name:        "Kerala",
		Region:      "Kerala",
		Country:     "India",
		Description: "Backwaters and scenic hill stations",
		Image:       "https://images.pexels.com/photos/962464/pexels-photo-962464.jpeg",
	},
	{
		Id:          "rajasthan",
		Name:        "Rajasthan",
		Region:      "Rajasthan",
		Country:     "India",
		Description: "Royal palaces and desert adventures",
		Image:       "https://images.pexels.com/photos/3581364/pexels-photo-3581364.jpeg",
	},
	{
		Id:          "himachal",
		Name:        "Himachal Pradesh",
		Region:      "Himachal Pradesh",
		Country:     "India",
		Description: "Mountain adventures and spiritual retreats",
		Image:       "https://images.pexels.com/photos/1287460/pexels-photo-1287460.jpeg",
	},
	{
		Id:          "mumbai",
		Name:        "Mumbai",
		Region:      "Maharashtra",
		Country:     "India",
		Description: "Bollywood glamour and street food",
		Image:       "https://images.pexels.com/photos/2850347/pexels-photo-2850347.jpeg",
	},
	{
		Id:          "delhi",
		Name:        "Delhi",
		Region:      "Delhi",
		Country:     "India",
		Description: "Historical monuments and modern culture",
		Image:       "https://images.pexels.com/photos/789750/pexels-photo-789750.jpeg",
	},
}

var builtinActivities = map[Theme][]Activity{
	Heritage: {
		{
			Id:              "heritage-1",
			Name:            "Red Fort Visit",
			Theme:           Heritage,
			Duration:        "3 hours",
			DurationMinutes: 180,
			Cost:            500,
			Description:     "Explore the magnificent Mughal architecture",
			Location:        "Old Delhi",
			Image:           "https://images.pexels.com/photos/789750/pexels-photo-789750.jpeg",
		},
		{
			Id:              "heritage-2",
			Name:            "Palace Museum Tour",
			Theme:           Heritage,
			Duration:        "4 hours",
			DurationMinutes: 240,
			Cost:            800,
			Description:     "Discover royal artifacts and history",
			Location:        "City Palace",
			Image:           "https://images.pexels.com/photos/3581364/pexels-photo-3581364.jpeg",
		},
	},
	Nightlife: {
		{
			Id:              "nightlife-1",
			Name:            "Rooftop Bar Experience",
			Theme:           Nightlife,
			Duration:        "4 hours",
			DurationMinutes: 240,
			Cost:            2000,
			Description:     "Enjoy craft cocktails with city views",
			Location:        "Downtown",
			Image:           "https://images.pexels.com/photos/1267320/pexels-photo-1267320.jpeg",
		},
		{
			Id:              "nightlife-2",
			Name:            "Beach Club Party",
			Theme:           Nightlife,
			Duration:        "5 hours",
			DurationMinutes: 300,
			Cost:            1500,
			Description:     "Dance to international DJs by the beach",
			Location:        "Beachfront",
			Image:           "https://images.pexels.com/photos/1450353/pexels-photo-1450353.jpeg",
		},
	},
	Adventure: {
		{
			Id:                "adventure-1",
			Name:              "Paragliding Experience",
			Theme:             Adventure,
			Duration:          "6 hours",
			DurationMinutes:   360,
			Cost:              3000,
			Description:       "Soar high above scenic valleys",
			Location:          "Mountain Valley",
			Image:             "https://images.pexels.com/photos/1287460/pexels-photo-1287460.jpeg",
			AlternativeReason: "Rain",
			Alternatives: []Alternative{
				{
					Id:              "adventure-1a",
					Name:            "Backwater Kayaking",
					Theme:           "water_sport",
					Duration:        "3 hours",
					DurationMinutes: 180,
					Cost:            3500,
					Description:     "Paddle through calm backwaters with lush views.",
					Location:        "Chapora River, Goa",
					Image:           "https://images.pexels.com/photos/1430672/pexels-photo-1430672.jpeg",
				},
				{
					Id:              "adventure-1b",
					Name:            "Indoor Surf Simulator",
					Theme:           "water_sport",
					Duration:        "2 hours",
					DurationMinutes: 120,
					Cost:            3500,
					Description:     "Ride endless waves, rain or shine.",
					Location:        "Candolim, Goa",
					Image:           "https://images.pexels.com/photos/416676/pexels-photo-416676.jpeg",
				},
			},
		},
		{
			Id:              "adventure-2",
			Name:            "White Water Rafting",
			Theme:           Adventure,
			Duration:        "5 hours",
			DurationMinutes: 300,
			Cost:            2500,
			Description:     "Navigate thrilling rapids",
			Location:        "River Rapids",
			Image:           "https://images.pexels.com/photos/962464/pexels-photo-962464.jpeg",
		},
	},
	Wellness: {
		{
			Id:              "wellness-1",
			Name:            "Ayurvedic Spa Treatment",
			Theme:           Wellness,
			Duration:        "3 hours",
			DurationMinutes: 180,
			Cost:            1800,
			Description:     "Rejuvenate with traditional therapies",
			Location:        "Wellness Center",
			Image:           "https://images.pexels.com/photos/3757952/pexels-photo-3757952.jpeg",
		},
		{
			Id:              "wellness-2",
			Name:            "Yoga Retreat Session",
			Theme:           Wellness,
			Duration:        "4 hours",
			DurationMinutes: 240,
			Cost:            1200,
			Description:     "Find inner peace with guided meditation",
			Location:        "Hilltop Retreat",
			Image:           "https://images.pexels.com/photos/1051838/pexels-photo-1051838.jpeg",
		},
	},
	Shopping: {
		{
			Id:              "shopping-1",
			Name:            "Local Bazaar Tour",
			Theme:           Shopping,
			Duration:        "4 hours",
			DurationMinutes: 240,
			Cost:            500,
			Description:     "Explore authentic local markets",
			Location:        "Old Market",
			Image:           "https://images.pexels.com/photos/1509428/pexels-photo-1509428.jpeg",
		},
		{
			Id:              "shopping-2",
			Name:            "Artisan Workshop Visit",
			Theme:           Shopping,
			Duration:        "3 hours",
			DurationMinutes: 180,
			Cost:            800,
			Description:     "Buy handcrafted souvenirs directly from makers",
			Location:        "Craft Village",
			Image:           "https://images.pexels.com/photos/1350789/pexels-photo-1350789.jpeg",
		},
	},
	Food: {
		{
			Id:              "food-1",
			Name:            "Street Food Walking Tour",
			Theme:           Food,
			Duration:        "3 hours",
			DurationMinutes: 180,
			Cost:            800,
			Description:     "Taste authentic local delicacies",
			Location:        "Food Street",
			Image:           "https://images.pexels.com/photos/1109197/pexels-photo-1109197.jpeg",
		},
		{
			Id:              "food-2",
			Name:            "Cooking Class Experience",
			Theme:           Food,
			Duration:        "4 hours",
			DurationMinutes: 240,
			Cost:            1500,
			Description:     "Learn to cook regional specialties",
			Location:        "Culinary School",
			Image:           "https://images.pexels.com/photos/2474661/pexels-photo-2474661.jpeg",
		},
	},
}

var builtinPlaces = []Place{
	{
		Id:            "goa-1",
		DestinationId: "goa",
		Name:          "Baga Beach",
		Category:      Attraction,
		Lat:           15.5557,
		Lng:           73.7516,
		Description:   "Famous beach known for water sports and vibrant nightlife",
		Cost:          0,
		Image:         "https://images.pexels.com/photos/1450353/pexels-photo-1450353.jpeg",
		Rating:        4.5,
		Address:       "Baga, Goa 403516",
	},
	{
		Id:            "goa-2",
		DestinationId: "goa",
		Name:          "Fort Aguada",
		Category:      Attraction,
		Lat:           15.4909,
		Lng:           73.7773,
		Description:   "Historic Portuguese fort with lighthouse and panoramic views",
		Cost:          25,
		Image:         "https://images.pexels.com/photos/3581364/pexels-photo-3581364.jpeg",
		Rating:        4.3,
		Address:       "Candolim, Goa 403515",
	},
	{
		Id:            "goa-3",
		DestinationId: "goa",
		Name:          "Taj Exotica Resort",
		Category:      Hotel,
		Lat:           15.2993,
		Lng:           74.1240,
		Description:   "Luxury beachfront resort with world-class amenities",
		Cost:          15000,
		Image:         "https://images.pexels.com/photos/258154/pexels-photo-258154.jpeg",
		Rating:        4.8,
		Address:       "Benaulim, South Goa 403716",
	},
	{
		Id:            "goa-4",
		DestinationId: "goa",
		Name:          "Fisherman's Wharf",
		Category:      Restaurant,
		Lat:           15.5016,
		Lng:           73.7570,
		Description:   "Waterfront restaurant serving fresh seafood and Goan cuisine",
		Cost:          1200,
		Image:         "https://images.pexels.com/photos/1109197/pexels-photo-1109197.jpeg",
		Rating:        4.4,
		Address:       "Cavelossim, Goa 403731",
	},
	{
		Id:            "goa-5",
		DestinationId: "goa",
		Name:          "Dudhsagar Falls",
		Category:      Attraction,
		Lat:           15.3144,
		Lng:           74.3144,
		Description:   "Spectacular four-tiered waterfall in the Western Ghats",
		Cost:          500,
		Image:         "https://images.pexels.com/photos/962464/pexels-photo-962464.jpeg",
		Rating:        4.6,
		Address:       "Bhagwan Mahaveer Sanctuary, Goa",
	},
	{
		Id:            "kerala-1",
		DestinationId: "kerala",
		Name:          "Alleppey Backwaters",
		Category:      Attraction,
		Lat:           9.4981,
		Lng:           76.3388,
		Description:   "Serene network of canals, rivers, and lakes",
		Cost:          2000,
		Image:         "https://images.pexels.com/photos/962464/pexels-photo-962464.jpeg",
		Rating:        4.7,
		Address:       "Alappuzha, Kerala 688001",
	},
	{
		Id:            "kerala-2",
		DestinationId: "kerala",
		Name:          "Munnar Tea Gardens",
		Category:      Attraction,
		Lat:           10.0889,
		Lng:           77.0595,
		Description:   "Rolling hills covered with lush tea plantations",
		Cost:          300,
		Image:         "https://images.pexels.com/photos/1287460/pexels-photo-1287460.jpeg",
		Rating:        4.5,
		Address:       "Munnar, Kerala 685612",
	},
	{
		Id:            "kerala-3",
		DestinationId: "kerala",
		Name:          "Kumarakom Lake Resort",
		Category:      Hotel,
		Lat:           9.6177,
		Lng:           76.4274,
		Description:   "Heritage luxury resort on Vembanad Lake",
		Cost:          18000,
		Image:         "https://images.pexels.com/photos/258154/pexels-photo-258154.jpeg",
		Rating:        4.9,
		Address:       "Kumarakom, Kerala 686563",
	},
	{
		Id:            "kerala-4",
		DestinationId: "kerala",
		Name:          "Dhe Puttu",
		Category:      Restaurant,
		Lat:           9.9312,
		Lng:           76.2673,
		Description:   "Authentic Kerala cuisine with traditional puttu varieties",
		Cost:          800,
		Image:         "https://images.pexels.com/photos/1109197/pexels-photo-1109197.jpeg",
		Rating:        4.3,
		Address:       "Kochi, Kerala 682001",
	},
	{
		Id:            "rajasthan-1",
		DestinationId: "rajasthan",
		Name:          "City Palace Udaipur",
		Category:      Attraction,
		Lat:           24.5760,
		Lng:           73.6833,
		Description:   "Magnificent palace complex overlooking Lake Pichola",
		Cost:          300,
		Image:         "https://images.pexels.com/photos/3581364/pexels-photo-3581364.jpeg",
		Rating:        4.6,
		Address:       "City Palace Complex, Udaipur 313001",
	},
	{
		Id:            "rajasthan-2",
		DestinationId: "rajasthan",
		Name:          "Hawa Mahal",
		Category:      Attraction,
		Lat:           26.9239,
		Lng:           75.8267,
		Description:   "Iconic pink sandstone palace with intricate lattice work",
		Cost:          200,
		Image:         "https://images.pexels.com/photos/789750/pexels-photo-789750.jpeg",
		Rating:        4.4,
		Address:       "Hawa Mahal Rd, Badi Choupad, Jaipur 302002",
	},
	{
		Id:            "rajasthan-3",
		DestinationId: "rajasthan",
		Name:          "Taj Lake Palace",
		Category:      Hotel,
		Lat:           24.5760,
		Lng:           73.6833,
		Description:   "Floating marble palace hotel on Lake Pichola",
		Cost:          25000,
		Image:         "https://images.pexels.com/photos/258154/pexels-photo-258154.jpeg",
		Rating:        4.9,
		Address:       "Pichola, Udaipur 313001",
	},
	{
		Id:            "rajasthan-4",
		DestinationId: "rajasthan",
		Name:          "Ambrai Restaurant",
		Category:      Restaurant,
		Lat:           24.5797,
		Lng:           73.6803,
		Description:   "Rooftop dining with stunning views of City Palace",
		Cost:          1500,
		Image:         "https://images.pexels.com/photos/1109197/pexels-photo-1109197.jpeg",
		Rating:        4.5,
		Address:       "Amet Haveli, Hanuman Ghat, Udaipur 313001",
	},
	{
		Id:            "himachal-1",
		DestinationId: "himachal",
		Name:          "Rohtang Pass",
		Category:      Attraction,
		Lat:           32.3720,
		Lng:           77.2479,
		Description:   "High mountain pass with snow-capped peaks and adventure sports",
		Cost:          50,
		Image:         "https://images.pexels.com/photos/1287460/pexels-photo-1287460.jpeg",
		Rating:        4.5,
		Address:       "Rohtang Pass, Himachal Pradesh 175103",
	},
	{
		Id:            "himachal-2",
		DestinationId: "himachal",
		Name:          "Solang Valley",
		Category:      Attraction,
		Lat:           32.3199,
		Lng:           77.1564,
		Description:   "Adventure sports hub with paragliding and skiing",
		Cost:          2000,
		Image:         "https://images.pexels.com/photos/962464/pexels-photo-962464.jpeg",
		Rating:        4.4,
		Address:       "Solang Valley, Manali, Himachal Pradesh 175131",
	},
	{
		Id:            "himachal-3",
		DestinationId: "himachal",
		Name:          "The Oberoi Cecil",
		Category:      Hotel,
		Lat:           31.1048,
		Lng:           77.1734,
		Description:   "Historic luxury hotel with colonial charm",
		Cost:          12000,
		Image:         "https://images.pexels.com/photos/258154/pexels-photo-258154.jpeg",
		Rating:        4.7,
		Address:       "Chaura Maidan, Shimla 171001",
	},
	{
		Id:            "himachal-4",
		DestinationId: "himachal",
		Name:          "Johnson's Cafe",
		Category:      Restaurant,
		Lat:           32.2396,
		Lng:           77.1887,
		Description:   "Cozy cafe serving continental and local Himachali cuisine",
		Cost:          600,
		Image:         "https://images.pexels.com/photos/1109197/pexels-photo-1109197.jpeg",
		Rating:        4.2,
		Address:       "Circuit House Rd, Manali 175131",
	},
	{
		Id:            "mumbai-1",
		DestinationId: "mumbai",
		Name:          "Gateway of India",
		Category:      Attraction,
		Lat:           18.9220,
		Lng:           72.8347,
		Description:   "Iconic arch monument overlooking the Arabian Sea",
		Cost:          0,
		Image:         "https://images.pexels.com/photos/2850347/pexels-photo-2850347.jpeg",
		Rating:        4.3,
		Address:       "Apollo Bandar, Colaba, Mumbai 400001",
	},
	{
		Id:            "mumbai-2",
		DestinationId: "mumbai",
		Name:          "Marine Drive",
		Category:      Attraction,
		Lat:           18.9441,
		Lng:           72.8230,
		Description:   "Scenic waterfront promenade known as Queen's Necklace",
		Cost:          0,
		Image:         "https://images.pexels.com/photos/1450353/pexels-photo-1450353.jpeg",
		Rating:        4.4,
		Address:       "Marine Drive, Mumbai 400020",
	},
	{
		Id:            "mumbai-3",
		DestinationId: "mumbai",
		Name:          "The Taj Mahal Palace",
		Category:      Hotel,
		Lat:           18.9216,
		Lng:           72.8331,
		Description:   "Legendary luxury hotel with heritage and modern wings",
		Cost:          20000,
		Image:         "https://images.pexels.com/photos/258154/pexels-photo-258154.jpeg",
		Rating:        4.8,
		Address:       "Apollo Bandar, Colaba, Mumbai 400001",
	},
	{
		Id:            "mumbai-4",
		DestinationId: "mumbai",
		Name:          "Trishna",
		Category:      Restaurant,
		Lat:           18.9067,
		Lng:           72.8147,
		Description:   "Award-winning restaurant serving contemporary Indian seafood",
		Cost:          2000,
		Image:         "https://images.pexels.com/photos/1109197/pexels-photo-1109197.jpeg",
		Rating:        4.6,
		Address:       "7 Rope Walk Ln, Kala Ghoda, Fort, Mumbai 400001",
	},
	{
		Id:            "delhi-1",
		DestinationId: "delhi",
		Name:          "Red Fort",
		Category:      Attraction,
		Lat:           28.6562,
		Lng:           77.2410,
		Description:   "Historic Mughal fortress and UNESCO World Heritage Site",
		Cost:          35,
		Image:         "https://images.pexels.com/photos/789750/pexels-photo-789750.jpeg",
		Rating:        4.2,
		Address:       "Netaji Subhash Marg, Chandni Chowk, New Delhi 110006",
	},
	{
		Id:            "delhi-2",
		DestinationId: "delhi",
		Name:          "India Gate",
		Category:      Attraction,
		Lat:           28.6129,
		Lng:           77.2295,
		Description:   "War memorial arch dedicated to Indian soldiers",
		Cost:          0,
		Image:         "https://images.pexels.com/photos/3581364/pexels-photo-3581364.jpeg",
		Rating:        4.3,
		Address:       "Rajpath, India Gate, New Delhi 110001",
	},
	{
		Id:            "delhi-3",
		DestinationId: "delhi",
		Name:          "The Imperial",
		Category:      Hotel,
		Lat:           28.6139,
		Lng:           77.2090,
		Description:   "Art Deco luxury hotel in the heart of New Delhi",
		Cost:          15000,
		Image:         "https://images.pexels.com/photos/258154/pexels-photo-258154.jpeg",
		Rating:        4.7,
		Address:       "Janpath, Connaught Place, New Delhi 110001",
	},
	{
		Id:            "delhi-4",
		DestinationId: "delhi",
		Name:          "Karim's",
		Category:      Restaurant,
		Lat:           28.6507,
		Lng:           77.2334,
		Description:   "Historic restaurant famous for Mughlai cuisine since 1913",
		Cost:          800,
		Image:         "https://images.pexels.com/photos/1109197/pexels-photo-1109197.jpeg",
		Rating:        4.1,
		Address:       "Gali Kababian, Jama Masjid, New Delhi 110006",
	},
}
