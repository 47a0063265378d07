package config

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gt=0"`
}

// DatasetConfig tells the loader where the fare archive lives. When both
// a URL and a local path are set the local path wins, so an operator can
// pin a downloaded copy.
type DatasetConfig struct {
	ArchiveURL  string `yaml:"archiveURL" validate:"omitempty,url"`
	ArchivePath string `yaml:"archivePath" validate:"omitempty"`
}

// ResolverConfig contains fare-resolution policy knobs
type ResolverConfig struct {
	// FareTypeAliases maps a tariff document's fare-type label to its
	// canonical label. Labels not present are used verbatim.
	FareTypeAliases map[string]string `yaml:"fareTypeAliases"`
	// VariantPrefix marks display route numbers that are variants of an
	// already-selected route and must not be offered as alternatives.
	VariantPrefix string `yaml:"variantPrefix"`
	// CurrencySymbol is prepended by the CLI text output only; prices are
	// carried as bare two-decimal strings everywhere else.
	CurrencySymbol string `yaml:"currencySymbol"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server   ServerConfig   `yaml:"server" validate:"required"`
	Dataset  DatasetConfig  `yaml:"dataset"`
	Resolver ResolverConfig `yaml:"resolver"`
}
