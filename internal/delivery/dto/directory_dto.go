package dto

// DirectoryFilterPayload mirrors the public filter form fields. The
// date and availability values are carried for API stability but do
// not restrict results yet.
type DirectoryFilterPayload struct {
	Department   string `json:"department"`
	Name         string `json:"name"`
	Letter       string `json:"letter"`
	Date         string `json:"date"`
	Availability string `json:"availability"`
}

// Request DTOs

// FilterDirectoryRequest carries a refinement plus its anti-forgery
// token. The token is checked by the handler, not the validator, so a
// missing nonce gets the same 403 as a stale one.
type FilterDirectoryRequest struct {
	Filters DirectoryFilterPayload `json:"filters"`
	Nonce   string                 `json:"nonce"`
}

// Response DTOs

// DirectoryDataResponse is the asynchronous refinement payload.
type DirectoryDataResponse struct {
	HTML  string `json:"html"`
	Total int    `json:"total"`
}

type DepartmentOptionResponse struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// DirectoryPageResponse is the initial render payload: the default
// result set plus everything the filter form needs.
type DirectoryPageResponse struct {
	HTML        string                     `json:"html"`
	Total       int                        `json:"total"`
	Filters     DirectoryFilterPayload     `json:"filters"`
	Departments []DepartmentOptionResponse `json:"departments"`
	Letters     []string                   `json:"letters"`
	Nonce       string                     `json:"nonce"`
}
