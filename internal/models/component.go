package models

// DesiredComponents is the allow-list of labels that count as components
var DesiredComponents = []string{
	"Build system",
	"Config",
	"Consensus",
	"Descriptors",
	"Docs",
	"GUI",
	"Logging",
	"Mempool",
	"Mining",
	"Net processing",
	"P2P",
	"Policy",
	"PSBT",
	"Resource usage",
	"RPC/REST/ZMQ",
	"Scripts and tools",
	"Tests",
	"TX fees and policy",
	"Utils/log/libs",
	"UTXO Db and Indexes",
	"Validation",
	"Wallet",
}

var desiredComponentSet = func() map[string]bool {
	set := make(map[string]bool, len(DesiredComponents))
	for _, c := range DesiredComponents {
		set[c] = true
	}
	return set
}()

// IsComponent checks if a label is an allow-listed component
func IsComponent(label string) bool {
	return desiredComponentSet[label]
}

// ComponentCount is the number of pull requests labelled with a component
type ComponentCount struct {
	Component string `json:"component"`
	Count     int    `json:"count"`
}

// ComponentNames returns just the names of the counted components
func ComponentNames(counts []ComponentCount) []string {
	names := make([]string, 0, len(counts))
	for _, c := range counts {
		names = append(names, c.Component)
	}
	return names
}
