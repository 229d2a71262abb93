// Package srdapi fetches 5e SRD monster data from dnd5eapi.co and
// converts it into catalog entries, so `labyrinth init --fetch` can
// seed a playable bestiary without shipping one.
package srdapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/data"
	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/dice"
)

const BaseURL = "https://www.dnd5eapi.co"

type Client struct {
	client  *http.Client
	dataDir string
	force   bool
}

func NewClient(dataDir string, force bool) *Client {
	return &Client{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		dataDir: dataDir,
		force:   force,
	}
}

type APIListResponse struct {
	Count   int `json:"count"`
	Results []struct {
		Index string `json:"index"`
		Name  string `json:"name"`
		URL   string `json:"url"`
	} `json:"results"`
}

// FetchList retrieves an endpoint's index, e.g. "monsters".
func (c *Client) FetchList(endpoint string) (*APIListResponse, error) {
	url := fmt.Sprintf("%s/api/2014/%s", BaseURL, endpoint)
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch %s: %s", url, resp.Status)
	}

	var list APIListResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, err
	}

	return &list, nil
}

// SRDMonster is the subset of the API's monster schema the catalog
// conversion needs.
type SRDMonster struct {
	Name       string `json:"name"`
	HitPoints  int    `json:"hit_points"`
	ArmorClass []struct {
		Value int `json:"value"`
	} `json:"armor_class"`
	Strength        int     `json:"strength"`
	Dexterity       int     `json:"dexterity"`
	ChallengeRating float64 `json:"challenge_rating"`
	XP              int     `json:"xp"`
	Actions         []struct {
		Damage []struct {
			DamageDice string `json:"damage_dice"`
		} `json:"damage"`
	} `json:"actions"`
}

// FetchMonster retrieves one monster by its API URL.
func (c *Client) FetchMonster(url string) (*SRDMonster, error) {
	fullURL := fmt.Sprintf("%s%s", BaseURL, url)
	req, err := http.NewRequest("GET", fullURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch %s: %s", fullURL, resp.Status)
	}

	var m SRDMonster
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		return nil, err
	}

	return &m, nil
}

// Convert maps an SRD monster onto a catalog entry. Challenge rating
// drives difficulty, rarity, and purse size; stat blocks carry over
// directly.
func Convert(m *SRDMonster) data.Monster {
	difficulty := int(m.ChallengeRating) + 1
	if difficulty > 5 {
		difficulty = 5
	}

	ac := 10
	if len(m.ArmorClass) > 0 {
		ac = m.ArmorClass[0].Value
	}

	xp := m.XP
	if xp == 0 {
		xp = 10 + difficulty*15
	}

	out := data.Monster{
		Name:         m.Name,
		HP:           m.HitPoints,
		ArmorClass:   ac,
		Strength:     m.Strength,
		Dexterity:    m.Dexterity,
		DamageDie:    damageDie(m),
		Difficulty:   difficulty,
		WanderWeight: 0.20 / (1.0 + m.ChallengeRating),
		XP:           xp,
		GoldMin:      2 + difficulty*3,
		GoldMax:      5 + difficulty*10,
	}
	return out
}

// damageDie pulls the first valid dice notation out of the monster's
// actions, falling back to a die sized by challenge.
func damageDie(m *SRDMonster) string {
	for _, action := range m.Actions {
		for _, dmg := range action.Damage {
			notation := strings.ReplaceAll(dmg.DamageDice, " ", "")
			if _, _, _, err := dice.Parse(notation); err == nil {
				return strings.ToLower(notation)
			}
		}
	}
	switch {
	case m.ChallengeRating >= 3:
		return "2d6"
	case m.ChallengeRating >= 1:
		return "1d8"
	}
	return "1d6"
}

// SaveCatalog writes the converted bestiary as the loader's
// monsters.yaml table.
func (c *Client) SaveCatalog(monsters []data.Monster) error {
	if err := os.MkdirAll(c.dataDir, 0755); err != nil {
		return err
	}

	localPath := filepath.Join(c.dataDir, "monsters.yaml")
	if !c.force {
		if _, err := os.Stat(localPath); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", localPath)
		}
	}

	f, err := os.Create(localPath)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := yaml.NewEncoder(f)
	encoder.SetIndent(2)
	return encoder.Encode(monsters)
}
