package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"sync"
	"time"
)

var URL, _ = os.LookupEnv("API_URL")
var PORT, _ = os.LookupEnv("API_PORT")
var apiURL = fmt.Sprintf("http://%s:%s", URL, PORT)
var generatePixURL = apiURL + "/generate-pix"
var notificationURL = apiURL + "/payment-notification"

const (
	workers  = 10
	duration = 30 * time.Second
)

type GeneratePixRequest struct {
	CPF      string `json:"cpf"`
	EmailPix string `json:"emailPix"`
	Numero   string `json:"numero"`
}

type PixChargeResponse struct {
	PixCode       string `json:"pixCode"`
	TransactionID string `json:"transactionId"`
}

type Notification struct {
	Action string `json:"action"`
	Type   string `json:"type"`
	Data   struct {
		ID string `json:"id"`
	} `json:"data"`
}

func main() {
	var wg sync.WaitGroup
	wg.Add(workers)

	transactionIds := make(chan string, workers*100)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			start := time.Now()
			for time.Since(start) < duration {
				charge, code, err := sendGeneratePix()
				if err != nil {
					fmt.Println("Error generating pix:", err)
				} else {
					fmt.Printf("Pix generated. Status code: %d, Transaction: %s\n", code, charge.TransactionID)
					select {
					case transactionIds <- charge.TransactionID:
					default:
					}
				}

				time.Sleep(time.Duration(rand.Intn(1000)) * time.Millisecond)
			}
		}()
	}

	// replay synthetic notifications for generated transactions
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			select {
			case id := <-transactionIds:
				code, err := sendNotification(id)
				if err != nil {
					fmt.Println("Error sending notification:", err)
					continue
				}
				fmt.Printf("Notification sent. Status code: %d, Transaction: %s\n", code, id)
			default:
			}
		}
	}()

	wg.Wait()
}

func sendGeneratePix() (*PixChargeResponse, int, error) {
	request := GeneratePixRequest{
		CPF:      randomCPF(),
		EmailPix: fmt.Sprintf("payer%d@example.com", rand.Intn(10000)),
		Numero:   randomPhone(),
	}

	data, err := json.Marshal(request)
	if err != nil {
		return nil, 0, err
	}

	resp, err := http.Post(generatePixURL, "application/json", bytes.NewBuffer(data))
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, resp.StatusCode, fmt.Errorf("wrong status code: %d", resp.StatusCode)
	}

	var charge PixChargeResponse
	if err = json.NewDecoder(resp.Body).Decode(&charge); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("error decoding pix response: %w", err)
	}

	return &charge, resp.StatusCode, nil
}

func sendNotification(transactionID string) (int, error) {
	notification := Notification{
		Action: "payment.updated",
		Type:   "payment",
	}
	notification.Data.ID = transactionID

	data, err := json.Marshal(notification)
	if err != nil {
		return 0, err
	}

	resp, err := http.Post(notificationURL, "application/json", bytes.NewBuffer(data))
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	return resp.StatusCode, nil
}

func randomCPF() string {
	digits := make([]byte, 11)
	for i := range digits {
		digits[i] = byte('0' + rand.Intn(10))
	}
	return string(digits)
}

func randomPhone() string {
	return fmt.Sprintf("+55119%08d", rand.Intn(100000000))
}
