package port

import "github.com/bnema/mytab/internal/domain/entity"

// ConfigSchemaProvider lists the keys accepted in config.toml.
type ConfigSchemaProvider interface {
	GetSchema() []entity.ConfigKeyInfo
}
