package domain

// NOTE: these mirror the upstream JSON documents. Only the fields consumed by the normalizer are declared.

type (
	// ChainSelector is the cross-chain routing identifier of a chain, distinct from its chain ID.
	ChainSelector uint64

	// RawNetwork is one entry of an upstream networks document.
	RawNetwork struct {
		Name                  string          `json:"name"`
		ChainID               uint64          `json:"chainId"`
		ChainSelector         ChainSelector   `json:"chainSelector"`
		RPCURLs               []string        `json:"rpcUrls"`
		BlockExplorers        []BlockExplorer `json:"blockExplorers"`
		NativeCurrency        NativeCurrency  `json:"nativeCurrency"`
		FinalityConfirmations *uint64         `json:"finalityConfirmations,omitempty"`
		FinalityTagEnabled    *bool           `json:"finalityTagEnabled,omitempty"`
		MinBlockConfirmations *uint64         `json:"minBlockConfirmations,omitempty"`
	}

	// RawRPC is one entry of an upstream RPC document. Only its URL list is merged into chains.
	RawRPC struct {
		RPCURLs            []string      `json:"rpcUrls"`
		ChainSelector      ChainSelector `json:"chainSelector"`
		ChainID            string        `json:"chainId"`
		FinalityTagEnabled *bool         `json:"finalityTagEnabled,omitempty"`
	}

	// Networks is an upstream networks document keyed by chain name.
	Networks map[string]RawNetwork

	// RPCs is an upstream RPC document keyed by chain name.
	RPCs map[string]RawRPC

	BlockExplorer struct {
		Name   string `json:"name"`
		URL    string `json:"url"`
		APIURL string `json:"apiUrl"`
	}

	NativeCurrency struct {
		Name     string `json:"name"`
		Symbol   string `json:"symbol"`
		Decimals uint8  `json:"decimals"`
	}
)
