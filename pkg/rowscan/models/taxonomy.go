package models

// TaxonomyEntry is one level-2 code of the flattened taxonomy dictionary.
// Pointer fields are nil when the source workbook has no value for them and
// map to optional Parquet columns.
type TaxonomyEntry struct {
	// HepaID is the 1-based surrogate key assigned after sorting.
	HepaID int64 `parquet:"hepa_id" json:"hepa_id"`
	// Level1Code is the single-letter parent code (sheet name).
	Level1Code string `parquet:"level1_code" json:"level1_code"`
	// Level1Name is the parent name looked up in the Level 1 sheet.
	Level1Name *string `parquet:"level1_name" json:"level1_name,omitempty"`
	// Level2Code is the code itself, e.g. "EA".
	Level2Code string `parquet:"level2_code" json:"level2_code"`
	// Level2Name is the code description.
	Level2Name string `parquet:"level2_name" json:"level2_name"`
	// Comments joins the non-empty comment columns with " | ".
	Comments *string `parquet:"comments" json:"comments,omitempty"`
	// Level is always 2 for entries produced by the flattener.
	Level int64 `parquet:"level" json:"level"`
	// Code mirrors Level2Code.
	Code string `parquet:"code" json:"code"`
	// Name mirrors Level2Name.
	Name string `parquet:"name" json:"name"`
	// Path is "<l1 code> <l1 name> > <l2 code> <l2 name>".
	Path string `parquet:"path" json:"path"`
}

// SlimRecord is the reduced view of a TaxonomyEntry used in prompt files.
type SlimRecord struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Path string `json:"path"`
}

// Slim returns the slim view of the entry.
func (e TaxonomyEntry) Slim() SlimRecord {
	return SlimRecord{Code: e.Code, Name: e.Name, Path: e.Path}
}
