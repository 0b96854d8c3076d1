package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

var maxUsers int = 2000
var httpHostPort string = "127.0.0.1:1080"

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

var userTypes = []string{"STUDENT", "FARMER", "TRAVELLER", "DELIVERY_WORKER", "GENERAL"}

func main() {
	userIDs := make([]string, maxUsers)
	for i := 0; i < maxUsers; i++ {
		userIDs[i] = uuid.NewString()
	}
	fmt.Printf("generated %v user IDs\n", maxUsers)

	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	var startTime time.Time
	var usedTime time.Duration

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := 0; i < maxUsers; i++ {
		i := i
		wg.Add(1)
		go func() {
			insertPreferences(userIDs[i])
			fmt.Printf("\rinserted preferences for user %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rinserted preferences for %v users: used time=%v seconds, throughput=%v action/second\n",
		maxUsers, usedTime.Seconds(), float64(maxUsers)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := 0; i < maxUsers; i++ {
		i := i
		wg.Add(1)
		go func() {
			doAction(userIDs[i])
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rdid actions for %v users: used time=%v seconds, throughput=%v action/second\n",
		maxUsers, usedTime.Seconds(), float64(maxUsers*3)/usedTime.Seconds(),
	)
}

func rndFloat64(min, max float64, decimal int) float64 {
	val := min + rnd.Float64()*(max-min)
	multiplier := float64(math.Pow10(decimal))
	return float64(math.Round(float64(val)*float64(multiplier))) / multiplier
}

func insertPreferences(userID string) {
	payload := map[string]any{
		"user_id":   userID,
		"user_type": userTypes[rnd.Intn(len(userTypes))],
		"custom_thresholds": map[string]any{
			"heatwave_temp":     rndFloat64(30.0, 40.0, 1),
			"heavy_rain_amount": rndFloat64(30.0, 80.0, 1),
		},
	}

	jsonData, _ := json.Marshal(payload)
	resp, err := http.Post(fmt.Sprintf("http://%s/api/preferences", httpHostPort), "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
}

func doAction(userID string) {
	actions := []func(){
		genUpsertPreferencesAction(userID),
		genGetPreferencesAction(userID),
		genRegisterTokenAction(userID),
		genGetHistoryAction(),
	}
	actionNames := []string{
		"UpsertPreferences",
		"GetPreferences",
		"RegisterToken",
		"GetHistory",
	}
	rnd.Shuffle(len(actions), func(i, j int) {
		actions[i], actions[j] = actions[j], actions[i]
		actionNames[i], actionNames[j] = actionNames[j], actionNames[i]
	})
	for index, action := range actions {
		action()
		fmt.Printf("\rexecuted action %v for user %v", actionNames[index], userID)
		time.Sleep(time.Duration(100+rnd.Int31n(1000)) * time.Millisecond)
	}
}

func genUpsertPreferencesAction(userID string) func() {
	return func() {
		insertPreferences(userID)
	}
}

func genGetPreferencesAction(userID string) func() {
	return func() {
		resp, err := http.Get(fmt.Sprintf("http://%s/api/preferences/%s", httpHostPort, userID))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nresponse status code != 200: %v\n", resp)
		}
	}
}

func genRegisterTokenAction(userID string) func() {
	return func() {
		payload := map[string]any{
			"user_id":  userID,
			"token":    fmt.Sprintf("ExponentPushToken[%s]", uuid.NewString()),
			"platform": "expo",
		}
		jsonData, _ := json.Marshal(payload)
		resp, err := http.Post(fmt.Sprintf("http://%s/api/users/device-token", httpHostPort), "application/json", bytes.NewBuffer(jsonData))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
	}
}

func genGetHistoryAction() func() {
	return func() {
		resp, err := http.Get(fmt.Sprintf("http://%s/api/alerts/history?limit=20", httpHostPort))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nresponse status code != 200: %v\n", resp)
		}
	}
}
