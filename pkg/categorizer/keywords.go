package categorizer

// keywordGroup maps a list of description keywords to one category id.
type keywordGroup struct {
	keywords   []string
	categoryID string
}

// rawKeywords is the static suggestion table, grouped per default category.
// All keywords are lower case; matching is substring containment against the
// lower-cased description.
var rawKeywords = []keywordGroup{
	{
		categoryID: "pokok",
		keywords:   []string{"beras", "nasi", "sayur", "buah", "telur", "daging", "ikan", "minyak", "gula", "garam", "tepung", "mie", "roti", "air"},
	},
	{
		categoryID: "utilitas",
		keywords:   []string{"listrik", "wifi", "airpam", "pulsa", "paketdata", "gas", "lpg", "iuran", "sampah"},
	},
	{
		categoryID: "keluarga",
		keywords:   []string{"popok", "susu", "mainan", "seragam", "sepatu", "pakaian", "tas", "hijab", "kosmetik", "perawatan"},
	},
	{
		categoryID: "keuangan",
		keywords:   []string{"tabungan", "investasi", "asuransi", "bpjs", "cicilan", "angsuran", "deposito"},
	},
	{
		categoryID: "transportasi",
		keywords:   []string{"bensin", "parkir", "tol", "ojek", "taksi", "bus", "kereta", "servis", "oli", "ban"},
	},
	{
		categoryID: "kesehatan",
		keywords:   []string{"obat", "vitamin", "dokter", "klinik", "rumahsakit", "teslab", "masker", "alkohol"},
	},
	{
		categoryID: "pendidikan",
		keywords:   []string{"sekolah", "les", "buku", "alat", "kursus", "pelatihan", "seminar", "ujian"},
	},
	{
		categoryID: "rumah",
		keywords:   []string{"sabun", "deterjen", "pewangi", "pel", "sapu", "vacuum", "pembersih", "lap"},
	},
	{
		categoryID: "sosial",
		keywords:   []string{"kondangan", "sumbangan", "donasi", "hadiah", "arisan", "tahlilan", "syukuran"},
	},
	{
		categoryID: "hiburan",
		keywords:   []string{"hiburan", "nongkrong", "nonton", "liburan", "game", "musik", "streaming", "kopi"},
	},
	{
		categoryID: "darurat",
		keywords:   []string{"darurat", "perbaikan", "kehilangan", "denda", "rusak"},
	},
}
