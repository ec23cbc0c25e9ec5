package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case PlayerResult:
		o.printPlayerResult(v)
	case AllowanceResult:
		o.printAllowanceResult(v)
	case MinterResult:
		o.printMinterResult(v)
	case TokenCountResult:
		fmt.Printf("Token count: %d\n", v.Count)
	case GrantResult:
		fmt.Printf("Accepted: %t\n", v.Accepted)
	case HealthResult:
		fmt.Printf("Status: %s\n", v.Status)
	default:
		o.printJSON(data)
	}
}

// Pokemon response type
type Pokemon struct {
	TokenID int64 `json:"token_id"`
	Index   int   `json:"index"`
	Health  int   `json:"health"`
}

// Player response type
type Player struct {
	ID             string    `json:"id"`
	Potions        int       `json:"potions"`
	Berries        int       `json:"berries"`
	DefaultPokemon int       `json:"default_pokemon"`
	Pokemons       []Pokemon `json:"pokemons"`
}

// MintRequest response type
type MintRequest struct {
	TokenID  int64  `json:"token_id"`
	Owner    string `json:"owner"`
	Minter   string `json:"minter"`
	TokenURI string `json:"token_uri"`
}

// PlayerResult response type
type PlayerResult struct {
	Player Player       `json:"player"`
	Mint   *MintRequest `json:"mint,omitempty"`
}

// AllowanceResult response type
type AllowanceResult struct {
	Address string `json:"address"`
	Allowed bool   `json:"allowed"`
}

// MinterResult response type
type MinterResult struct {
	Address string       `json:"address"`
	Mint    *MintRequest `json:"mint,omitempty"`
}

// TokenCountResult response type
type TokenCountResult struct {
	Count int64 `json:"count"`
}

// GrantResult response type
type GrantResult struct {
	Accepted bool `json:"accepted"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayerResult(r PlayerResult) {
	p := r.Player
	fmt.Printf("Player: %s\n", p.ID)
	fmt.Printf("  Potions: %d  Berries: %d  Default pokemon: %d\n", p.Potions, p.Berries, p.DefaultPokemon)
	fmt.Println("  Pokemons:")
	for _, pk := range p.Pokemons {
		fmt.Printf("    [%d] token %d, health %d\n", pk.Index, pk.TokenID, pk.Health)
	}
	if r.Mint != nil {
		fmt.Printf("  Mint emitted: token %d -> %s (via %s)\n", r.Mint.TokenID, r.Mint.Owner, r.Mint.Minter)
	}
}

func (o *Output) printAllowanceResult(r AllowanceResult) {
	fmt.Printf("%s: allowed=%t\n", r.Address, r.Allowed)
}

func (o *Output) printMinterResult(r MinterResult) {
	fmt.Printf("Minter: %s\n", r.Address)
	if r.Mint != nil {
		fmt.Printf("  Mint emitted: token %d -> %s\n", r.Mint.TokenID, r.Mint.Owner)
	}
}
