package budget

import "strings"

// Category is one of the nine canonical budget categories free-text categories normalize into
type Category string

const (
	CategoryHousing       Category = "housing"
	CategoryInsurance     Category = "insurance"
	CategoryTransport     Category = "transport"
	CategoryGroceries     Category = "groceries"
	CategoryFood          Category = "food"
	CategoryEntertainment Category = "entertainment"
	CategoryShopping      Category = "shopping"
	CategoryVacation      Category = "vacation"
	CategorySavings       Category = "savings"
)

// Bucket is one side of the needs/wants/savings split
type Bucket string

const (
	BucketNeeds   Bucket = "needs"
	BucketWants   Bucket = "wants"
	BucketSavings Bucket = "savings"
)

// Buckets lists the buckets in presentation order
var Buckets = []Bucket{BucketNeeds, BucketWants, BucketSavings}

// DefaultCategory is used for categories the lexicon does not know
const DefaultCategory = CategoryShopping

// lexicon maps lower-cased Dutch and English category names onto canonical categories.
// Keys must already be lower case and trimmed.
var lexicon = map[string]Category{
	// housing
	"housing":                   CategoryHousing,
	"wonen":                     CategoryHousing,
	"huur":                      CategoryHousing,
	"rent":                      CategoryHousing,
	"hypotheek":                 CategoryHousing,
	"mortgage":                  CategoryHousing,
	"energie":                   CategoryHousing,
	"energy":                    CategoryHousing,
	"gas":                       CategoryHousing,
	"water":                     CategoryHousing,
	"elektriciteit":             CategoryHousing,
	"electricity":               CategoryHousing,
	"utilities":                 CategoryHousing,
	"nutsvoorzieningen":         CategoryHousing,
	"internet":                  CategoryHousing,
	"telefoon":                  CategoryHousing,
	"phone":                     CategoryHousing,
	"gemeentelijke belastingen": CategoryHousing,
	"belastingen":               CategoryHousing,
	"taxes":                     CategoryHousing,

	// insurance
	"insurance":        CategoryInsurance,
	"verzekering":      CategoryInsurance,
	"verzekeringen":    CategoryInsurance,
	"zorgverzekering":  CategoryInsurance,
	"health insurance": CategoryInsurance,
	"zorg":             CategoryInsurance,
	"healthcare":       CategoryInsurance,

	// transport
	"transport":        CategoryTransport,
	"transportation":   CategoryTransport,
	"vervoer":          CategoryTransport,
	"auto":             CategoryTransport,
	"car":              CategoryTransport,
	"brandstof":        CategoryTransport,
	"benzine":          CategoryTransport,
	"fuel":             CategoryTransport,
	"openbaar vervoer": CategoryTransport,
	"ov":               CategoryTransport,
	"public transport": CategoryTransport,
	"parkeren":         CategoryTransport,
	"parking":          CategoryTransport,

	// groceries
	"groceries":    CategoryGroceries,
	"boodschappen": CategoryGroceries,
	"supermarkt":   CategoryGroceries,
	"supermarket":  CategoryGroceries,

	// food
	"food":           CategoryFood,
	"eten":           CategoryFood,
	"eten & drinken": CategoryFood,
	"uit eten":       CategoryFood,
	"dining":         CategoryFood,
	"dining out":     CategoryFood,
	"restaurant":     CategoryFood,
	"restaurants":    CategoryFood,
	"takeaway":       CategoryFood,
	"afhaal":         CategoryFood,

	// entertainment
	"entertainment": CategoryEntertainment,
	"vermaak":       CategoryEntertainment,
	"uitgaan":       CategoryEntertainment,
	"streaming":     CategoryEntertainment,
	"abonnementen":  CategoryEntertainment,
	"subscriptions": CategoryEntertainment,
	"hobby":         CategoryEntertainment,
	"hobby's":       CategoryEntertainment,
	"sport":         CategoryEntertainment,
	"sports":        CategoryEntertainment,

	// shopping
	"shopping": CategoryShopping,
	"winkelen": CategoryShopping,
	"kleding":  CategoryShopping,
	"clothing": CategoryShopping,
	"overig":   CategoryShopping,
	"other":    CategoryShopping,
	"diversen": CategoryShopping,

	// vacation
	"vacation": CategoryVacation,
	"vakantie": CategoryVacation,
	"travel":   CategoryVacation,
	"reizen":   CategoryVacation,
	"holiday":  CategoryVacation,

	// savings
	"savings":       CategorySavings,
	"sparen":        CategorySavings,
	"spaargeld":     CategorySavings,
	"spaarrekening": CategorySavings,
	"beleggen":      CategorySavings,
	"investments":   CategorySavings,
	"investment":    CategorySavings,
	"pensioen":      CategorySavings,
	"pension":       CategorySavings,
}

// categoryBuckets assigns every canonical category to a bucket. Groceries sit in wants,
// not needs; downstream reports depend on that placement.
var categoryBuckets = map[Category]Bucket{
	CategoryHousing:       BucketNeeds,
	CategoryInsurance:     BucketNeeds,
	CategoryTransport:     BucketNeeds,
	CategoryGroceries:     BucketWants,
	CategoryFood:          BucketWants,
	CategoryEntertainment: BucketWants,
	CategoryShopping:      BucketWants,
	CategoryVacation:      BucketWants,
	CategorySavings:       BucketSavings,
}

// NormalizeCategory maps a free-text category onto a canonical category.
// Unknown names fall back to DefaultCategory.
func NormalizeCategory(name string) Category {
	key := strings.ToLower(strings.TrimSpace(name))
	if c, ok := lexicon[key]; ok {
		return c
	}
	return DefaultCategory
}

// LookupCategory is NormalizeCategory without the fallback
func LookupCategory(name string) (Category, bool) {
	c, ok := lexicon[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// BucketFor returns the bucket a canonical category belongs to
func BucketFor(c Category) Bucket {
	if b, ok := categoryBuckets[c]; ok {
		return b
	}
	return categoryBuckets[DefaultCategory]
}

// BucketForName normalizes a free-text category and returns its bucket
func BucketForName(name string) Bucket {
	return BucketFor(NormalizeCategory(name))
}
