package models

// Category is the closed set of ledger categories. The string values are
// wire format: the sync side writes them and the reconciliation side
// matches on them, so they must never be renamed.
type Category string

const (
	CategoryOrderPayment       Category = "Order Payment"
	CategorySetoranLoket       Category = "Setoran Loket"
	CategorySetoranKasir       Category = "Setoran Kasir"
	CategoryAdminFee           Category = "Admin Fee"
	CategoryBelanjaOperasional Category = "Belanja Operasional"
	CategoryBelanjaLoket       Category = "Belanja Loket"
	CategoryKasKecil           Category = "Kas Kecil"
	CategoryTopupSaldo         Category = "Topup Saldo"
	CategoryKoreksi            Category = "Koreksi"
	CategoryLainnya            Category = "Lainnya"
)

var knownCategories = map[Category]bool{
	CategoryOrderPayment:       true,
	CategorySetoranLoket:       true,
	CategorySetoranKasir:       true,
	CategoryAdminFee:           true,
	CategoryBelanjaOperasional: true,
	CategoryBelanjaLoket:       true,
	CategoryKasKecil:           true,
	CategoryTopupSaldo:         true,
	CategoryKoreksi:            true,
	CategoryLainnya:            true,
}

func (c Category) Valid() bool {
	return knownCategories[c]
}

// KasirCategories are the ledger categories a kasir report is reconciled
// against. Both belanja categories count as the report's belanja line.
var KasirCategories = []Category{
	CategoryOrderPayment,
	CategorySetoranKasir,
	CategoryAdminFee,
	CategoryBelanjaLoket,
	CategoryBelanjaOperasional,
}

// LoketCategories are the ledger categories a loket report is reconciled
// against.
var LoketCategories = []Category{
	CategoryOrderPayment,
	CategorySetoranLoket,
}

// IsBelanja reports whether c is one of the spend categories matched
// against a kasir report's belanja line.
func (c Category) IsBelanja() bool {
	return c == CategoryBelanjaLoket || c == CategoryBelanjaOperasional
}
