package request

// RegisterRequest is the request body for registering a player
type RegisterRequest struct {
	ID string `json:"id"`
}

// CatchPokemonRequest is the request body for catching a pokemon
type CatchPokemonRequest struct {
	TokenURI    string `json:"token_uri"`
	Health      int    `json:"health"`
	CurrPokemon int    `json:"curr_pokemon"`
}

// SetDefaultPokemonRequest is the request body for choosing a default pokemon
type SetDefaultPokemonRequest struct {
	Index int `json:"index"`
}

// BindMinterRequest is the request body for binding the minter contract
type BindMinterRequest struct {
	Address  string `json:"address"`
	TokenURI string `json:"token_uri"`
}

// GrantMsg is one message of a fee-grant validation request
type GrantMsg struct {
	Sender  string `json:"sender"`
	TypeURL string `json:"type_url"`
	Msg     []byte `json:"msg"`
}

// Coin is a fee amount in a grant validation request
type Coin struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

// ValidateGrantRequest is the request body the runtime submits for
// fee-sponsorship approval
type ValidateGrantRequest struct {
	FeeRequested []Coin     `json:"fee_requested"`
	Msgs         []GrantMsg `json:"msgs"`
}
