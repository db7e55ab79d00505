package importer

import "strings"

// Canonical field names shared by both importers. Workbook headers arrive
// in mixed languages and spellings; the alias tables below map them onto
// this set once per sheet.
const (
	FieldUID            = "uid"
	FieldName           = "name"
	FieldJobTitle       = "job_title"
	FieldLocation       = "location"
	FieldBirthDate      = "birth_date"
	FieldCheckupDate    = "checkup_date"
	FieldAge            = "age"
	FieldHeight         = "height"
	FieldWeight         = "weight"
	FieldWaist          = "waist"
	FieldFastingGlucose = "fasting_glucose"
	FieldRandomGlucose  = "random_glucose"
	FieldCholesterol    = "cholesterol"
	FieldUricAcid       = "uric_acid"
)

type fieldSpec struct {
	Field   string
	Aliases []string
}

var masterFields = []fieldSpec{
	{FieldName, []string{"nama", "employee_name", "karyawan", "name"}},
	{FieldJobTitle, []string{"jabatan", "position", "title", "job_title"}},
	{FieldLocation, []string{"lokasi", "location", "site"}},
	{FieldBirthDate, []string{"tanggal_lahir", "tgl_lahir", "tanggal lahir", "birthdate", "dob", "birth_date"}},
}

var checkupFields = []fieldSpec{
	{FieldUID, []string{"uid", "id_karyawan", "employee_id"}},
	{FieldName, []string{"nama", "employee_name", "karyawan", "name"}},
	{FieldJobTitle, []string{"jabatan", "position", "title", "job_title"}},
	{FieldLocation, []string{"lokasi", "location", "site"}},
	{FieldBirthDate, []string{"tanggal_lahir", "tgl_lahir", "tanggal lahir", "birthdate", "dob", "birth_date"}},
	{FieldCheckupDate, []string{"tanggal_checkup", "tanggal checkup", "tanggal_pemeriksaan", "checkup_date", "tanggal"}},
	{FieldAge, []string{"umur", "age"}},
	{FieldHeight, []string{"tinggi", "tinggi_badan", "height"}},
	{FieldWeight, []string{"berat", "berat_badan", "weight"}},
	{FieldWaist, []string{"lingkar_perut", "lingkar perut", "waist"}},
	{FieldFastingGlucose, []string{"gula_darah_puasa", "gdp", "fasting_glucose"}},
	{FieldRandomGlucose, []string{"gula_darah_sewaktu", "gds", "random_glucose"}},
	{FieldCholesterol, []string{"cholesterol", "kolesterol"}},
	{FieldUricAcid, []string{"asam_urat", "asam urat", "uric_acid"}},
}

// ColumnMap holds the resolved canonical-field -> column-index mapping for
// one sheet. Absent fields have no entry.
type ColumnMap map[string]int

// ResolveColumns matches sheet headers against the alias lists of each
// canonical field. Matching is case-insensitive after separator stripping;
// the first alias that appears in the headers wins.
func ResolveColumns(headers []string, fields []fieldSpec) ColumnMap {
	byHeader := make(map[string]int, len(headers))
	for i, header := range headers {
		key := normalizeHeader(header)
		if key == "" {
			continue
		}
		if _, seen := byHeader[key]; !seen {
			byHeader[key] = i
		}
	}

	resolved := make(ColumnMap, len(fields))
	for _, spec := range fields {
		for _, alias := range spec.Aliases {
			if idx, ok := byHeader[normalizeHeader(alias)]; ok {
				resolved[spec.Field] = idx
				break
			}
		}
	}
	return resolved
}

func (m ColumnMap) Has(field string) bool {
	_, ok := m[field]
	return ok
}

// Value returns the trimmed cell for the given canonical field, or "" when
// the field is absent or the row is shorter than the mapped column.
func (m ColumnMap) Value(row Row, field string) string {
	idx, ok := m[field]
	if !ok || idx >= len(row.Cells) {
		return ""
	}
	return strings.TrimSpace(row.Cells[idx])
}

func normalizeHeader(input string) string {
	trimmed := strings.TrimSpace(strings.ToLower(input))
	trimmed = strings.ReplaceAll(trimmed, "_", "")
	trimmed = strings.ReplaceAll(trimmed, "-", "")
	trimmed = strings.ReplaceAll(trimmed, " ", "")
	return trimmed
}
