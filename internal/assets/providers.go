package assets

import _ "embed"

// ProvidersData holds the raw JSON catalog of supported providers and their models.
//
//go:embed providers.json
var ProvidersData []byte
