// Package config provides configuration parsing for east-ui deployments.
//
// The configuration is stored in eastui.json (or eastui.yaml) at the
// project root. This package handles loading, saving, and validating it.
//
// # Configuration File Structure
//
//	{
//	  "server": {
//	    "address": ":8080"
//	  },
//	  "store": {
//	    "backend": "s3",
//	    "bucket": "my-datasets",
//	    "prefix": "east/",
//	    "region": "us-east-1"
//	  },
//	  "dataset": {
//	    "refetchInterval": "30s"
//	  },
//	  "render": {
//	    "pretty": false
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Address:", cfg.Server.Address)
package config
