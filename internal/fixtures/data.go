package fixtures

// Word pools for name, address and needs generation. Small on purpose:
// uniqueness comes from the email disambiguator, not from pool size.
var (
	firstNames = []string{
		"James", "Mary", "John", "Patricia", "Robert", "Jennifer",
		"Michael", "Linda", "David", "Elizabeth", "William", "Susan",
	}

	lastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia",
		"Miller", "Davis", "Wilson", "Taylor", "Moore", "Clark",
	}

	streets = []string{
		"High Street", "Station Road", "Main Street", "Church Lane",
		"Park Avenue", "Victoria Road", "Mill Lane", "King Street",
	}

	cities = []string{
		"London", "Manchester", "Bristol", "Leeds", "Newcastle", "York",
	}

	states = []string{
		"Greater London", "Greater Manchester", "West Yorkshire", "Avon",
	}

	countries = []string{
		"United Kingdom", "Ireland",
	}

	additionalNeeds = []string{
		"Breakfast", "Late checkout", "Extra pillows", "Quiet room",
		"Ground floor", "Parking",
	}
)
