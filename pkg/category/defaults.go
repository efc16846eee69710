package category

// DefaultCategories returns the eleven categories every new budget sheet is
// seeded with. The ids are fixed: the auto-categorization keyword table and
// persisted transactions refer to them.
func DefaultCategories() []Category {
	return []Category{
		{ID: "pokok", Name: "Kebutuhan Pokok", Color: "#ea580c", IsDefault: true},
		{ID: "utilitas", Name: "Utilitas & Tagihan", Color: "#ca8a04", IsDefault: true},
		{ID: "keluarga", Name: "Kebutuhan Keluarga", Color: "#2563eb", IsDefault: true},
		{ID: "keuangan", Name: "Keuangan & Perencanaan", Color: "#16a34a", IsDefault: true},
		{ID: "transportasi", Name: "Transportasi", Color: "#475569", IsDefault: true},
		{ID: "kesehatan", Name: "Kesehatan", Color: "#dc2626", IsDefault: true},
		{ID: "pendidikan", Name: "Pendidikan", Color: "#7c3aed", IsDefault: true},
		{ID: "rumah", Name: "Perawatan Rumah", Color: "#0891b2", IsDefault: true},
		{ID: "sosial", Name: "Sosial", Color: "#db2777", IsDefault: true},
		{ID: "hiburan", Name: "Hiburan & Gaya Hidup", Color: "#c026d3", IsDefault: true},
		{ID: "darurat", Name: "Dana Tidak Terduga", Color: "#be123c", IsDefault: true},
	}
}
