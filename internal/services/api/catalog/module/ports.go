package module

import catdom "biblia/internal/services/api/catalog/domain"

// Ports is what the catalog module offers other modules
type Ports struct {
	Catalog catdom.ServicePort
}
