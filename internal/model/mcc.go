package model

// MerchantCategory returns the description of an ISO 18245 merchant
// category code. Codes outside the table return ok == false.
func MerchantCategory(code string) (string, bool) {
	desc, ok := merchantCategories[code]
	return desc, ok
}

var merchantCategories = map[string]string{
	"0742": "Veterinary Services",
	"0763": "Agricultural Cooperatives",
	"0780": "Landscaping and Horticultural Services",
	"1520": "General Contractors-Residential and Commercial",
	"1711": "Air Conditioning, Heating and Plumbing Contractors",
	"1731": "Electrical Contractors",
	"1750": "Carpentry Contractors",
	"1799": "Special Trade Contractors-Not Elsewhere Classified",
	"2741": "Miscellaneous Publishing and Printing",
	"2842": "Specialty Cleaning, Polishing and Sanitation Preparations",
	"3000": "United Airlines",
	"3001": "American Airlines",
	"3005": "British Airways",
	"3058": "Delta",
	"3501": "Holiday Inns",
	"3504": "Hilton Hotels",
	"3509": "Marriott",
	"4111": "Local/Suburban Commuter Passenger Transportation",
	"4112": "Passenger Railways",
	"4121": "Taxicabs and Limousines",
	"4131": "Bus Lines",
	"4214": "Motor Freight Carriers, Moving and Storage",
	"4215": "Courier Services-Air and Ground",
	"4411": "Cruise Lines",
	"4511": "Airlines, Air Carriers",
	"4722": "Travel Agencies and Tour Operators",
	"4784": "Bridge and Road Fees, Tolls",
	"4812": "Telecommunication Equipment and Telephone Sales",
	"4814": "Telecommunication Services",
	"4816": "Computer Network/Information Services",
	"4899": "Cable, Satellite and Other Pay Television and Radio Services",
	"4900": "Utilities-Electric, Gas, Water and Sanitary",
	"5021": "Office and Commercial Furniture",
	"5045": "Computers, Computer Peripheral Equipment, Software",
	"5111": "Stationery, Office Supplies, Printing and Writing Paper",
	"5200": "Home Supply Warehouse Stores",
	"5211": "Lumber and Building Materials Stores",
	"5251": "Hardware Stores",
	"5261": "Lawn and Garden Supply Stores",
	"5300": "Wholesale Clubs",
	"5310": "Discount Stores",
	"5311": "Department Stores",
	"5331": "Variety Stores",
	"5399": "Miscellaneous General Merchandise Stores",
	"5411": "Grocery Stores, Supermarkets",
	"5422": "Freezer and Locker Meat Provisioners",
	"5441": "Candy, Nut and Confectionery Stores",
	"5451": "Dairy Products Stores",
	"5462": "Bakeries",
	"5499": "Miscellaneous Food Stores-Convenience Stores and Specialty Markets",
	"5511": "Car and Truck Dealers (New and Used)",
	"5521": "Car and Truck Dealers (Used Only)",
	"5532": "Automotive Tire Stores",
	"5533": "Automotive Parts and Accessories Stores",
	"5541": "Service Stations (With or Without Ancillary Services)",
	"5542": "Automated Fuel Dispensers",
	"5651": "Family Clothing Stores",
	"5661": "Shoe Stores",
	"5691": "Men's and Women's Clothing Stores",
	"5712": "Furniture, Home Furnishings and Equipment Stores",
	"5722": "Household Appliance Stores",
	"5732": "Electronics Stores",
	"5734": "Computer Software Stores",
	"5735": "Record Stores",
	"5811": "Caterers",
	"5812": "Eating Places, Restaurants",
	"5813": "Drinking Places (Alcoholic Beverages)",
	"5814": "Fast Food Restaurants",
	"5912": "Drug Stores and Pharmacies",
	"5921": "Package Stores-Beer, Wine and Liquor",
	"5940": "Bicycle Shops-Sales and Service",
	"5941": "Sporting Goods Stores",
	"5942": "Book Stores",
	"5943": "Stationery, Office and School Supply Stores",
	"5944": "Jewelry, Watch, Clock and Silverware Stores",
	"5945": "Hobby, Toy and Game Shops",
	"5947": "Gift, Card, Novelty and Souvenir Shops",
	"5964": "Direct Marketing-Catalog Merchants",
	"5968": "Direct Marketing-Continuity/Subscription Merchants",
	"5969": "Direct Marketing-Other Direct Marketers",
	"5970": "Artist's Supply and Craft Shops",
	"5977": "Cosmetic Stores",
	"5992": "Florists",
	"5995": "Pet Shops, Pet Food and Supplies",
	"5999": "Miscellaneous and Specialty Retail Stores",
	"6010": "Financial Institutions-Manual Cash Disbursements",
	"6011": "Financial Institutions-Automated Cash Disbursements",
	"6012": "Financial Institutions-Merchandise and Services",
	"6051": "Non-Financial Institutions-Foreign Currency, Money Orders, Travelers' Cheques",
	"6211": "Security Brokers/Dealers",
	"6300": "Insurance Sales, Underwriting and Premiums",
	"6513": "Real Estate Agents and Managers-Rentals",
	"7011": "Lodging-Hotels, Motels, Resorts",
	"7210": "Laundry, Cleaning and Garment Services",
	"7216": "Dry Cleaners",
	"7230": "Beauty and Barber Shops",
	"7298": "Health and Beauty Spas",
	"7311": "Advertising Services",
	"7372": "Computer Programming, Data Processing and Integrated Systems Design Services",
	"7399": "Business Services-Not Elsewhere Classified",
	"7512": "Automobile Rental Agency",
	"7523": "Parking Lots and Garages",
	"7538": "Automotive Service Shops (Non-Dealer)",
	"7542": "Car Washes",
	"7832": "Motion Picture Theaters",
	"7841": "Video Tape Rental Stores",
	"7911": "Dance Halls, Studios and Schools",
	"7922": "Theatrical Producers (Except Motion Pictures), Ticket Agencies",
	"7933": "Bowling Alleys",
	"7941": "Commercial Sports, Professional Sports Clubs, Athletic Fields and Sports Promoters",
	"7991": "Tourist Attractions and Exhibits",
	"7996": "Amusement Parks, Circuses, Carnivals and Fortune Tellers",
	"7997": "Membership Clubs (Sports, Recreation, Athletic), Country Clubs and Private Golf Courses",
	"7999": "Recreation Services-Not Elsewhere Classified",
	"8011": "Doctors and Physicians-Not Elsewhere Classified",
	"8021": "Dentists and Orthodontists",
	"8042": "Optometrists and Ophthalmologists",
	"8062": "Hospitals",
	"8099": "Medical Services and Health Practitioners-Not Elsewhere Classified",
	"8111": "Legal Services and Attorneys",
	"8211": "Elementary and Secondary Schools",
	"8220": "Colleges, Universities, Professional Schools and Junior Colleges",
	"8299": "Schools and Educational Services-Not Elsewhere Classified",
	"8398": "Charitable and Social Service Organizations",
	"8641": "Civic, Social and Fraternal Associations",
	"8661": "Religious Organizations",
	"8699": "Membership Organizations-Not Elsewhere Classified",
	"8931": "Accounting, Auditing and Bookkeeping Services",
	"8999": "Professional Services-Not Elsewhere Classified",
	"9211": "Court Costs, Including Alimony and Child Support",
	"9222": "Fines",
	"9311": "Tax Payments",
	"9399": "Government Services-Not Elsewhere Classified",
	"9402": "Postal Services-Government Only",
}
