package homepage

// ServicesConfig is the top-level structure of services.yaml.
// Homepage uses dynamic keys: []map[group][]map[service]ServiceProps
type ServicesConfig []map[string][]map[string]ServiceProps

// ServiceProps holds the fields of a service entry we read. Everything
// else (widgets, ping, siteMonitor) is ignored by the decoder.
type ServiceProps struct {
	Href        string `yaml:"href"`
	Icon        string `yaml:"icon,omitempty"`
	Description string `yaml:"description,omitempty"`
}
