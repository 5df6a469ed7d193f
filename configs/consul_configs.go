package configs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
)

type ConsulService struct {
	ID      string            `json:"ID"`
	Name    string            `json:"Name"`
	Address string            `json:"Address"`
	Port    int               `json:"Port"`
	Check   map[string]string `json:"Check"`
}

// RegisterService registers the service with Consul. Only called when
// CONSUL_ADDRESS is configured.
func RegisterService(cfg ConsulConfig, serverPort string) error {
	port, err := strconv.Atoi(serverPort)
	if err != nil {
		return fmt.Errorf("invalid server port %q: %v", serverPort, err)
	}

	service := ConsulService{
		ID:      cfg.ServiceName,
		Name:    cfg.ServiceName,
		Address: cfg.ServiceHost,
		Port:    port,
		Check: map[string]string{
			"HTTP":     fmt.Sprintf("http://%s:%d/health", cfg.ServiceHost, port),
			"Interval": "10s",
		},
	}

	data, err := json.Marshal(service)
	if err != nil {
		return fmt.Errorf("failed to marshal service data: %v", err)
	}

	url := fmt.Sprintf("%s/v1/agent/service/register", cfg.Address)
	req, err := http.NewRequest("PUT", url, bytes.NewBuffer(data))
	if err != nil {
		return fmt.Errorf("failed to create PUT request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to register service with Consul: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to register service with Consul: %s", resp.Status)
	}

	log.Printf("Service '%s' registered successfully with Consul", cfg.ServiceName)
	return nil
}
