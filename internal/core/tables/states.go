package tables

// Per-state fallback indicators, keyed by state or union-territory name.
// Values are approximations from 2021-22 published figures.

// DefaultHDI is the fallback Human Development Index for states missing
// from HDIByState.
const DefaultHDI = 0.65

// HDIByState maps state names to their Human Development Index.
var HDIByState = map[string]float64{
	"Kerala":                      0.782,
	"Delhi":                       0.746,
	"Goa":                         0.761,
	"Punjab":                      0.723,
	"Tamil Nadu":                  0.708,
	"Himachal Pradesh":            0.725,
	"Maharashtra":                 0.696,
	"Karnataka":                   0.682,
	"Telangana":                   0.669,
	"Gujarat":                     0.672,
	"Haryana":                     0.708,
	"Uttarakhand":                 0.684,
	"West Bengal":                 0.641,
	"Andhra Pradesh":              0.649,
	"Rajasthan":                   0.629,
	"Odisha":                      0.606,
	"Assam":                       0.613,
	"Jharkhand":                   0.599,
	"Chhattisgarh":                0.613,
	"Madhya Pradesh":              0.603,
	"Uttar Pradesh":               0.596,
	"Bihar":                       0.574,
	"Manipur":                     0.697,
	"Tripura":                     0.658,
	"Meghalaya":                   0.636,
	"Nagaland":                    0.679,
	"Sikkim":                      0.716,
	"Mizoram":                     0.705,
	"Arunachal Pradesh":           0.662,
	"Jammu and Kashmir":           0.688,
	"Chandigarh":                  0.775,
	"Puducherry":                  0.738,
	"Andaman and Nicobar Islands": 0.74,
	"Lakshadweep":                 0.712,
	"Dadra and Nagar Haveli":      0.663,
	"Daman and Diu":               0.681,
	"Ladakh":                      0.674,
}

// DefaultUrbanization is the fallback urbanization percentage.
const DefaultUrbanization = 35.0

// UrbanizationByState maps state names to their urban population share (%).
var UrbanizationByState = map[string]float64{
	"Delhi":                       97.5,
	"Chandigarh":                  97.3,
	"Puducherry":                  68.3,
	"Goa":                         62.2,
	"Mizoram":                     52.1,
	"Tamil Nadu":                  48.4,
	"Kerala":                      47.7,
	"Maharashtra":                 45.2,
	"Gujarat":                     42.6,
	"Karnataka":                   38.6,
	"Telangana":                   38.9,
	"Punjab":                      37.5,
	"Haryana":                     34.8,
	"Andhra Pradesh":              33.5,
	"West Bengal":                 31.9,
	"Uttarakhand":                 30.2,
	"Jammu and Kashmir":           27.4,
	"Nagaland":                    28.9,
	"Manipur":                     29.2,
	"Jharkhand":                   24.1,
	"Rajasthan":                   24.9,
	"Chhattisgarh":                23.2,
	"Madhya Pradesh":              27.6,
	"Odisha":                      16.7,
	"Assam":                       14.1,
	"Bihar":                       11.3,
	"Himachal Pradesh":            10.0,
	"Sikkim":                      25.1,
	"Tripura":                     26.2,
	"Meghalaya":                   20.1,
	"Arunachal Pradesh":           22.9,
	"Uttar Pradesh":               22.3,
	"Andaman and Nicobar Islands": 37.7,
	"Dadra and Nagar Haveli":      47.2,
	"Daman and Diu":               75.2,
	"Lakshadweep":                 78.1,
	"Ladakh":                      21.4,
}

// CapitalByState maps state names to their capital city.
var CapitalByState = map[string]string{
	"Andhra Pradesh":              "Amaravati",
	"Arunachal Pradesh":           "Itanagar",
	"Assam":                       "Dispur",
	"Bihar":                       "Patna",
	"Chhattisgarh":                "Raipur",
	"Goa":                         "Panaji",
	"Gujarat":                     "Gandhinagar",
	"Haryana":                     "Chandigarh",
	"Himachal Pradesh":            "Shimla",
	"Jharkhand":                   "Ranchi",
	"Karnataka":                   "Bengaluru",
	"Kerala":                      "Thiruvananthapuram",
	"Madhya Pradesh":              "Bhopal",
	"Maharashtra":                 "Mumbai",
	"Manipur":                     "Imphal",
	"Meghalaya":                   "Shillong",
	"Mizoram":                     "Aizawl",
	"Nagaland":                    "Kohima",
	"Odisha":                      "Bhubaneswar",
	"Punjab":                      "Chandigarh",
	"Rajasthan":                   "Jaipur",
	"Sikkim":                      "Gangtok",
	"Tamil Nadu":                  "Chennai",
	"Telangana":                   "Hyderabad",
	"Tripura":                     "Agartala",
	"Uttar Pradesh":               "Lucknow",
	"Uttarakhand":                 "Dehradun",
	"West Bengal":                 "Kolkata",
	"Andaman and Nicobar Islands": "Port Blair",
	"Chandigarh":                  "Chandigarh",
	"Dadra and Nagar Haveli":      "Silvassa",
	"Daman and Diu":               "Daman",
	"Delhi":                       "New Delhi",
	"Jammu and Kashmir":           "Srinagar/Jammu",
	"Ladakh":                      "Leh",
	"Lakshadweep":                 "Kavaratti",
	"Puducherry":                  "Puducherry",
}

// LanguagesByState maps state names to their official languages.
var LanguagesByState = map[string]string{
	"Andhra Pradesh":    "Telugu",
	"Arunachal Pradesh": "English",
	"Assam":             "Assamese",
	"Bihar":             "Hindi, Urdu",
	"Chhattisgarh":      "Hindi",
	"Goa":               "Konkani, Marathi",
	"Gujarat":           "Gujarati",
	"Haryana":           "Hindi",
	"Himachal Pradesh":  "Hindi, Sanskrit",
	"Jharkhand":         "Hindi",
	"Karnataka":         "Kannada",
	"Kerala":            "Malayalam",
	"Madhya Pradesh":    "Hindi",
	"Maharashtra":       "Marathi",
	"Manipur":           "Manipuri",
	"Meghalaya":         "English",
	"Mizoram":           "Mizo, English",
	"Nagaland":          "English",
	"Odisha":            "Odia",
	"Punjab":            "Punjabi",
	"Rajasthan":         "Hindi",
	"Sikkim":            "Nepali, English",
	"Tamil Nadu":        "Tamil",
	"Telangana":         "Telugu, Urdu",
	"Tripura":           "Bengali, English",
	"Uttar Pradesh":     "Hindi, Urdu",
	"Uttarakhand":       "Hindi, Sanskrit",
	"West Bengal":       "Bengali",
	"Delhi":             "Hindi, English",
	"Jammu and Kashmir": "Urdu, Kashmiri, Dogri",
	"Ladakh":            "Ladakhi, Hindi, English",
}

// DefaultMajorCrops is the fallback for states missing from CropsByState.
const DefaultMajorCrops = "Various food and cash crops"

// CropsByState maps major agricultural states to their main crops.
var CropsByState = map[string]string{
	"Punjab":         "Wheat, Rice, Maize, Sugarcane",
	"Haryana":        "Wheat, Rice, Sugarcane, Cotton",
	"Uttar Pradesh":  "Wheat, Rice, Sugarcane, Pulses",
	"Bihar":          "Rice, Wheat, Maize, Pulses",
	"West Bengal":    "Rice, Jute, Tea, Pulses",
	"Assam":          "Rice, Tea, Jute, Oilseeds",
	"Gujarat":        "Cotton, Groundnut, Tobacco, Cumin",
	"Maharashtra":    "Jowar, Cotton, Sugarcane, Pulses",
	"Karnataka":      "Coffee, Silk, Ragi, Jowar",
	"Tamil Nadu":     "Rice, Sugarcane, Banana, Cotton",
	"Andhra Pradesh": "Rice, Cotton, Sugarcane, Tobacco",
	"Kerala":         "Coconut, Rubber, Cardamom, Pepper",
	"Rajasthan":      "Bajra, Pulses, Oilseeds, Wheat",
	"Madhya Pradesh": "Soybean, Wheat, Rice, Maize",
}

// DefaultKeyIndustries is the fallback for states missing from
// IndustriesByState.
const DefaultKeyIndustries = "Agriculture, Services, Small-scale industries"

// IndustriesByState maps industrialized states to their key industries.
var IndustriesByState = map[string]string{
	"Maharashtra":    "Automotive, IT, Textiles, Finance",
	"Gujarat":        "Petrochemicals, Textiles, Pharmaceuticals",
	"Tamil Nadu":     "Automotive, Textiles, Electronics",
	"Karnataka":      "IT, Aerospace, Biotechnology",
	"Delhi":          "IT, Media, Tourism, Retail",
	"Telangana":      "IT, Pharmaceuticals, Biotechnology",
	"Haryana":        "Automotive, IT, Agriculture",
	"Uttar Pradesh":  "Food Processing, Cement, Handicrafts",
	"West Bengal":    "Jute, Tea, Leather, Steel",
	"Andhra Pradesh": "Pharmaceuticals, Food Processing, Textiles",
	"Kerala":         "Tourism, Coir, Spices, Seafood",
	"Goa":            "Tourism, Pharmaceuticals, Mining",
	"Punjab":         "Textiles, Food Processing, Sports Goods",
}

// DefaultDestinations is the fallback for states missing from
// DestinationsByState.
const DefaultDestinations = "Various historical and natural attractions"

// DestinationsByState maps tourism-heavy states to their famous
// destinations.
var DestinationsByState = map[string]string{
	"Rajasthan":         "Jaipur, Udaipur, Jaisalmer, Jodhpur",
	"Kerala":            "Alleppey, Munnar, Kochi, Thekkady",
	"Goa":               "Baga Beach, Calangute, Anjuna, Old Goa",
	"Himachal Pradesh":  "Shimla, Manali, Dharamshala, Dalhousie",
	"Maharashtra":       "Mumbai, Ajanta & Ellora, Lonavala",
	"Tamil Nadu":        "Chennai, Ooty, Kodaikanal, Mahabalipuram",
	"Uttar Pradesh":     "Agra, Varanasi, Lucknow, Allahabad",
	"Delhi":             "Red Fort, Qutub Minar, India Gate, Humayun's Tomb",
	"Karnataka":         "Bangalore, Mysore, Hampi, Coorg",
	"Uttarakhand":       "Rishikesh, Haridwar, Nainital, Mussoorie",
	"Jammu and Kashmir": "Srinagar, Gulmarg, Pahalgam, Leh",
	"Ladakh":            "Leh, Pangong Lake, Nubra Valley, Zanskar",
}
