package timetable

// The embedded timetables are hand-curated and representative, not a mirror
// of any published WSF schedule. They exist so the service can always answer
// even when every live feed is down.

func routeData() []Route {
	return []Route{
		{
			ID:              "seattle-bainbridge",
			Abbrev:          "sea-bi",
			Name:            "Seattle → Bainbridge Island",
			ShortName:       "Seattle/Bainbridge",
			Terminals:       []string{"Seattle (Colman Dock)", "Bainbridge Island"},
			CrossingMinutes: 35,
			Frequency:       "35-50 minutes",
			OperatingHours:  "5:20 AM - 1:00 AM",
			Category:        CategoryCommuter,
			Vessels:         []string{"WENATCHEE", "SPOKANE", "WALLA WALLA", "PUYALLUP"},
			Directions: []Direction{
				{Key: "seattle-to-bainbridge", From: "Seattle (Colman Dock)", To: "Bainbridge Island"},
				{Key: "bainbridge-to-seattle", From: "Bainbridge Island", To: "Seattle (Colman Dock)"},
			},
		},
		{
			ID:              "edmonds-kingston",
			Abbrev:          "ed-king",
			Name:            "Edmonds → Kingston",
			ShortName:       "Edmonds/Kingston",
			Terminals:       []string{"Edmonds", "Kingston"},
			CrossingMinutes: 30,
			Frequency:       "40-55 minutes",
			OperatingHours:  "4:55 AM - 12:55 AM",
			Category:        CategoryCommuter,
			Vessels:         []string{"PUYALLUP", "SPOKANE"},
			Directions: []Direction{
				{Key: "edmonds-to-kingston", From: "Edmonds", To: "Kingston"},
				{Key: "kingston-to-edmonds", From: "Kingston", To: "Edmonds"},
			},
		},
		{
			ID:              "seattle-bremerton",
			Abbrev:          "sea-br",
			Name:            "Seattle → Bremerton",
			ShortName:       "Seattle/Bremerton",
			Terminals:       []string{"Seattle (Colman Dock)", "Bremerton"},
			CrossingMinutes: 60,
			Frequency:       "80-95 minutes",
			OperatingHours:  "4:50 AM - 12:50 AM",
			Category:        CategoryLongHaul,
			Vessels:         []string{"WALLA WALLA", "CHIMACUM", "KALEETAN"},
			Directions: []Direction{
				{Key: "seattle-to-bremerton", From: "Seattle (Colman Dock)", To: "Bremerton"},
				{Key: "bremerton-to-seattle", From: "Bremerton", To: "Seattle (Colman Dock)"},
			},
		},
		{
			ID:              "mukilteo-clinton",
			Abbrev:          "muk-cl",
			Name:            "Mukilteo → Clinton",
			ShortName:       "Mukilteo/Clinton",
			Terminals:       []string{"Mukilteo", "Clinton (Whidbey Island)"},
			CrossingMinutes: 20,
			Frequency:       "30 minutes",
			OperatingHours:  "4:45 AM - 12:30 AM",
			Category:        CategoryFrequent,
			Vessels:         []string{"TOKITAE", "SUQUAMISH"},
			Directions: []Direction{
				{Key: "mukilteo-to-clinton", From: "Mukilteo", To: "Clinton (Whidbey Island)"},
				{Key: "clinton-to-mukilteo", From: "Clinton (Whidbey Island)", To: "Mukilteo"},
			},
		},
		{
			ID:                   "anacortes-sanjuans",
			Abbrev:               "ana-sj",
			Name:                 "Anacortes → San Juan Islands",
			ShortName:            "Anacortes/San Juans",
			Terminals:            []string{"Anacortes", "Lopez Island", "Orcas Island", "Friday Harbor"},
			CrossingMinutes:      65,
			Frequency:            "2-3 hours",
			OperatingHours:       "4:25 AM - 11:00 PM",
			ReservationsRequired: true,
			Category:             CategoryIslandHopping,
			Vessels:              []string{"YAKIMA", "SAMISH", "HYAK"},
			Directions: []Direction{
				{Key: "anacortes-to-friday-harbor", From: "Anacortes", To: "Friday Harbor"},
				{Key: "friday-harbor-to-anacortes", From: "Friday Harbor", To: "Anacortes"},
			},
		},
	}
}

func slotData() map[string]map[string][]Slot {
	return map[string]map[string][]Slot{
		"seattle-bainbridge": {
			"seattle-to-bainbridge": {
				{5, 20}, {6, 25}, {7, 55}, {9, 10}, {10, 25}, {11, 40},
				{12, 55}, {14, 10}, {15, 25}, {16, 40}, {17, 55}, {19, 10},
				{20, 25}, {21, 40}, {22, 55},
			},
			"bainbridge-to-seattle": {
				{4, 45}, {5, 50}, {7, 5}, {8, 20}, {9, 35}, {10, 50},
				{12, 5}, {13, 20}, {14, 35}, {15, 50}, {17, 5}, {18, 20},
				{19, 35}, {20, 50}, {22, 5},
			},
		},
		"edmonds-kingston": {
			"edmonds-to-kingston": {
				{5, 35}, {6, 25}, {7, 10}, {7, 55}, {8, 50}, {9, 35},
				{10, 25}, {11, 10}, {12, 0}, {12, 50}, {13, 40}, {14, 25},
				{15, 15}, {16, 0}, {16, 50}, {17, 40}, {18, 30}, {19, 20},
				{20, 10}, {21, 0}, {21, 50}, {22, 40},
			},
			"kingston-to-edmonds": {
				{4, 55}, {5, 45}, {6, 30}, {7, 15}, {8, 10}, {8, 55},
				{9, 45}, {10, 30}, {11, 20}, {12, 10}, {13, 0}, {13, 45},
				{14, 35}, {15, 20}, {16, 10}, {17, 0}, {17, 50}, {18, 40},
				{19, 30}, {20, 20}, {21, 10}, {22, 0},
			},
		},
		"seattle-bremerton": {
			"seattle-to-bremerton": {
				{5, 35}, {7, 0}, {8, 35}, {10, 10}, {11, 55}, {13, 30},
				{15, 5}, {16, 40}, {18, 15}, {19, 50}, {21, 15}, {22, 30},
			},
			"bremerton-to-seattle": {
				{4, 50}, {6, 20}, {7, 50}, {9, 25}, {11, 0}, {12, 40},
				{14, 15}, {15, 50}, {17, 25}, {19, 0}, {20, 30}, {21, 50},
			},
		},
		"mukilteo-clinton": {
			"mukilteo-to-clinton": {
				{5, 5}, {5, 35}, {6, 10}, {6, 40}, {7, 15}, {7, 45},
				{8, 20}, {8, 50}, {9, 25}, {10, 0}, {10, 30}, {11, 5},
				{11, 35}, {12, 10}, {12, 40}, {13, 15}, {13, 45}, {14, 20},
				{14, 50}, {15, 25}, {15, 55}, {16, 30}, {17, 0}, {17, 35},
				{18, 5}, {18, 40}, {19, 10}, {19, 45}, {20, 15}, {20, 50},
				{21, 25}, {22, 0}, {22, 35}, {23, 10},
			},
			"clinton-to-mukilteo": {
				{4, 45}, {5, 20}, {5, 50}, {6, 25}, {6, 55}, {7, 30},
				{8, 0}, {8, 35}, {9, 5}, {9, 40}, {10, 15}, {10, 45},
				{11, 20}, {11, 50}, {12, 25}, {12, 55}, {13, 30}, {14, 0},
				{14, 35}, {15, 5}, {15, 40}, {16, 10}, {16, 45}, {17, 15},
				{17, 50}, {18, 20}, {18, 55}, {19, 25}, {20, 0}, {20, 30},
				{21, 5}, {21, 40}, {22, 15}, {22, 50},
			},
		},
		"anacortes-sanjuans": {
			"anacortes-to-friday-harbor": {
				{4, 25}, {7, 30}, {10, 35}, {13, 50}, {17, 5}, {20, 25},
			},
			"friday-harbor-to-anacortes": {
				{5, 55}, {9, 5}, {12, 15}, {15, 30}, {18, 45}, {21, 55},
			},
		},
	}
}
