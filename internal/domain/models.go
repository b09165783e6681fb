package domain

type Medication struct {
	ID            int     `db:"id"`
	Name          string  `db:"name"`
	NameAr        string  `db:"name_ar"`
	Form          string  `db:"form"`
	FormAr        string  `db:"form_ar"`
	Dosage        string  `db:"dosage"`
	Laboratory    string  `db:"laboratory"`
	Price         float64 `db:"price"`
	Description   string  `db:"description"`
	DescriptionAr string  `db:"description_ar"`
	Composition   string  `db:"composition"`
	CompositionAr string  `db:"composition_ar"`
	Usage         string  `db:"usage"`
	UsageAr       string  `db:"usage_ar"`
	SideEffects   string  `db:"side_effects"`
	SideEffectsAr string  `db:"side_effects_ar"`
	Stock         int     `db:"stock"`
	Image         string  `db:"image"`

	// Ordered ids of substitutable medications. Referential only; the
	// records live in the same catalog.
	Alternatives []int `db:"-"`
	// Stock held at individual pharmacies, seed order preserved.
	Pharmacies []PharmacyStock `db:"-"`
}

// Available derives availability from stock. The legacy dataset carried an
// independent availability flag next to stock; stock is the single source
// of truth here.
func (m Medication) Available() bool { return m.Stock > 0 }

// PharmacyStock is one "this pharmacy holds N units" entry on a medication.
type PharmacyStock struct {
	MedicationID int    `db:"medication_id"`
	PharmacyID   int    `db:"pharmacy_id"`
	Name         string `db:"name"`
	Distance     string `db:"distance"`
	Stock        int    `db:"stock"`
}

type Pharmacy struct {
	ID          int     `db:"id"`
	Name        string  `db:"name"`
	Address     string  `db:"address"`
	Phone       string  `db:"phone"`
	Latitude    float64 `db:"latitude"`
	Longitude   float64 `db:"longitude"`
	IsOpen      bool    `db:"is_open"`
	Hours       string  `db:"hours"`
	DistanceKm  float64 `db:"distance_km"`
	Services    string  `db:"services"` // comma-separated capability tags
	Payment     string  `db:"payment"`  // comma-separated payment methods
	Parking     bool    `db:"parking"`
	Wheelchair  bool    `db:"wheelchair"`
	Image       string  `db:"image"`
	Description string  `db:"description"`
}

// Availability statuses for the stock classifier.
const (
	StatusOutOfStock = "OUT_OF_STOCK"
	StatusLimited    = "LIMITED"
	StatusInStock    = "IN_STOCK"
)

type Availability struct {
	Status string `json:"status"` // IN_STOCK | LIMITED | OUT_OF_STOCK
	Qty    int    `json:"qty"`
	Label  string `json:"label"` // display text, e.g. "Stock limité (30)"
}

// StockItem is a row of a pharmacy owner's own inventory list, edited on
// the stock-management screen.
type StockItem struct {
	ID          string  `db:"id"`
	OwnerID     string  `db:"owner_id"`
	Name        string  `db:"name"`
	Price       float64 `db:"price"`
	Stock       int     `db:"stock"`
	Description string  `db:"description"`
	Image       string  `db:"image"`
	Category    string  `db:"category"`
	LastUpdated string  `db:"last_updated"` // YYYY-MM-DD
}

// StockCategories are the fixed labels offered by the stock editor,
// alphabetically sorted.
var StockCategories = []string{
	"Analgésiques",
	"Antiacides",
	"Antibiotiques",
	"Anticoagulants",
	"Antidiabétiques",
	"Antidépresseurs",
	"Antihistaminiques",
	"Antihypertenseurs",
	"Anti-inflammatoires",
	"Anxiolytiques",
	"Bronchodilatateurs",
	"Contraceptifs",
	"Corticostéroïdes",
	"Dermatologiques",
	"Diurétiques",
	"Hormones",
	"Immunosuppresseurs",
	"Ophtalmologiques",
	"Psychotropes",
	"Vitamines et Minéraux",
}

type ContactMessage struct {
	ID        string `db:"id"`
	Name      string `db:"name"`
	Email     string `db:"email"`
	Subject   string `db:"subject"`
	Message   string `db:"message"`
	CreatedAt string `db:"created_at"`
}
