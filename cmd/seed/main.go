package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/places-directory/internal/usecase/dto"
	"github.com/spf13/viper"
)

// seed drives the running API over HTTP to load or wipe sample data.
//
//	seed -load       load the sample companies and individuals
//	seed -delete     clear all directory data
//	seed -reload     clear, then load

var sampleCompanies = []dto.CreateCompanyRequest{
	{
		Name:    "RoboWorks GmbH",
		Website: "https://roboworks.example.com",
		Email:   "contact@roboworks.example.com",
		Place: dto.PlaceInput{
			Position: []float64{52.0302, 8.5325},
			Title:    "RoboWorks Assembly Hall",
			Address:  "Detmolder Str. 10, 33604 Bielefeld",
			Category: "ROBOSMITH",
		},
	},
	{
		Name:    "PixelForge Digital",
		Website: "https://pixelforge.example.com",
		Email:   "hello@pixelforge.example.com",
		Place: dto.PlaceInput{
			Position: []float64{52.0192, 8.5301},
			Title:    "PixelForge Studio",
			Address:  "Arndtstr. 5, 33602 Bielefeld",
			Category: "DIGITAL_FACTORY",
		},
	},
}

var sampleIndividuals = []dto.CreateIndividualRequest{
	{
		FirstName: "Greta",
		LastName:  "Felder",
		Email:     "greta.felder@example.com",
		Place: dto.PlaceInput{
			Position: []float64{52.0456, 8.4921},
			Title:    "Felder Vertical Farm",
			Address:  "Am Stadtholz 24, 33609 Bielefeld",
			Category: "TECHNO_FARMER",
		},
	},
	{
		FirstName: "Jonas",
		LastName:  "Brandt",
		Email:     "jonas.brandt@example.com",
		Place: dto.PlaceInput{
			Position: []float64{52.0211, 8.5498},
			Title:    "Brandt Print Workshop",
			Address:  "Oelmühlenstr. 31, 33604 Bielefeld",
			Category: "DIGITAL_FACTORY",
		},
	},
}

type seeder struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func main() {
	var (
		load   = flag.Bool("load", false, "load the sample data set")
		del    = flag.Bool("delete", false, "delete all directory data")
		reload = flag.Bool("reload", false, "delete all data, then load the sample set")
	)
	flag.Parse()

	viper.SetConfigFile(".env")
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()

	baseURL := viper.GetString("PLACES_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8001"
	}
	apiKey := viper.GetString("PLACES_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(os.Stderr, "PLACES_API_KEY is required (generate one with the keygen tool)")
		os.Exit(1)
	}

	s := &seeder{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}

	switch {
	case *reload:
		if err := s.clearAll(); err != nil {
			fail(err)
		}
		if err := s.loadSamples(); err != nil {
			fail(err)
		}
	case *del:
		if err := s.clearAll(); err != nil {
			fail(err)
		}
	case *load:
		if err := s.loadSamples(); err != nil {
			fail(err)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func (s *seeder) loadSamples() error {
	for _, c := range sampleCompanies {
		resp, err := s.do(http.MethodPost, "/api/v1/companies", c)
		if err != nil {
			return fmt.Errorf("create company %q: %w", c.Name, err)
		}
		fmt.Printf("Created company %q: %s\n", c.Name, resp)
	}
	for _, i := range sampleIndividuals {
		resp, err := s.do(http.MethodPost, "/api/v1/individuals", i)
		if err != nil {
			return fmt.Errorf("create individual %q: %w", i.FirstName+" "+i.LastName, err)
		}
		fmt.Printf("Created individual %q: %s\n", i.FirstName+" "+i.LastName, resp)
	}
	fmt.Printf("Loaded %d companies and %d individuals.\n", len(sampleCompanies), len(sampleIndividuals))
	return nil
}

func (s *seeder) clearAll() error {
	if _, err := s.do(http.MethodDelete, "/api/v1/admin/clear-all-data", nil); err != nil {
		return fmt.Errorf("clear all data: %w", err)
	}
	fmt.Println("All directory data cleared.")
	return nil
}

func (s *seeder) do(method, path string, body interface{}) (string, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return "", err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, s.baseURL+path, reader)
	if err != nil {
		return "", err
	}
	req.Header.Set("X-API-Key", s.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("unexpected status %d: %s", resp.StatusCode, data)
	}

	return string(bytes.TrimSpace(data)), nil
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
