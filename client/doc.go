// Package client provides a Go client for the Pastery paste service
// (https://www.pastery.net).
//
// # Installation
//
//	go get github.com/tombowditch/pastery-cli/client
//
// # Quick Start
//
//	package main
//
//	import (
//		"context"
//		"fmt"
//		"log"
//		"time"
//
//		"github.com/tombowditch/pastery-cli/client"
//	)
//
//	func main() {
//		c := client.New("yourapikey")
//
//		// Create a paste
//		paste, err := c.Create(context.Background(), []byte("Hello, World!"), client.CreateOptions{
//			Language: "go",
//			Duration: 24 * time.Hour,
//			Title:    "hello.go",
//		})
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Println("Paste URL:", paste.URL)
//
//		// Retrieve a paste (by URL or ID)
//		got, err := c.Get(context.Background(), paste.URL)
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Println("Content:", got.Body)
//	}
//
// # Expiration
//
// Pastes expire after CreateOptions.Duration, or after CreateOptions.MaxViews
// views if that is set. Durations are sent to the service in whole minutes.
//
// # Custom Configuration
//
//	c := client.New("yourapikey",
//		client.WithBaseURL("https://your-pastery-instance.com"),
//		client.WithTimeout(10 * time.Second),
//	)
//
// # Error Handling
//
//	paste, err := c.Get(ctx, "abc123")
//	if client.IsNotFound(err) {
//		// Paste expired or doesn't exist
//	}
//	if client.IsRateLimited(err) {
//		// Too many requests, back off
//	}
//	if client.IsUnauthorized(err) {
//		// Bad API key
//	}
package client
