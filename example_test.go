package prtg_test

import (
	"context"
	"fmt"
	"log"
	"time"

	prtg "github.com/CC-Digital-Innovation/go-prtg"
)

func ExampleNew() {
	ctx := context.Background()

	client, err := prtg.New(ctx, "https://prtg.example.com",
		prtg.TokenAuth{Token: "your-api-token"})
	if err != nil {
		log.Fatal(err)
	}

	devices, err := client.GetAllDevices(ctx)
	if err != nil {
		log.Fatal(err)
	}

	for _, device := range devices {
		fmt.Printf("%d %s (%s)\n", device.ObjID(), device.Name(), device.Host())
	}
}

func ExampleNewWithConfig() {
	ctx := context.Background()

	client, err := prtg.NewWithConfig(ctx, &prtg.ClientConfig{
		BaseURL:     "https://prtg.example.com",
		Credentials: prtg.PasshashAuth{Username: "automation", Passhash: "1234567890"},
		// Retry 500 too: this instance answers 500 while restarting.
		RetryOn: []int{500, 502, 503, 504},
		Timeout: 2 * time.Minute,
	})
	if err != nil {
		log.Fatal(err)
	}

	tree, err := client.GetSensorTree(ctx, 0)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(len(tree))
}

func ExampleClient_AddDevice() {
	ctx := context.Background()

	client, err := prtg.New(ctx, "https://prtg.example.com",
		prtg.TokenAuth{Token: "your-api-token"})
	if err != nil {
		log.Fatal(err)
	}

	device, err := client.AddDevice(ctx, "db-primary", "10.0.1.20", 2010, prtg.IconServer)
	if err != nil {
		log.Fatal(err)
	}

	// The record is the confirmed listing entry of the new device.
	if err := client.SetTags(ctx, device.ObjID(), []string{"postgres", "tier 1"}); err != nil {
		log.Fatal(err)
	}
	fmt.Println(client.DeviceURL(device.ObjID()))
}
