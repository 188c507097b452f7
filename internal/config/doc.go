// Package config loads featuregrid.json.
//
// Every field is optional; missing values fall back to defaults.
//
//	{
//	  "server": {
//	    "host": "0.0.0.0",
//	    "port": 4100,
//	    "sessionTTL": "30m",
//	    "maxSessions": 1000
//	  },
//	  "registry": {
//	    "onDuplicate": "reject"
//	  },
//	  "catalog": {
//	    "path": "./catalog.hcl"
//	  },
//	  "builder": {
//	    "layout": "bento",
//	    "variant": "bento-mixed",
//	    "theme": "purple",
//	    "dark": true
//	  },
//	  "export": {
//	    "bucket": "marketing-previews",
//	    "prefix": "grids/",
//	    "region": "us-east-1"
//	  },
//	  "log": {
//	    "level": "debug",
//	    "format": "json"
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.LoadOrDefault(flagPath)
//	if err != nil {
//	    return err
//	}
//	fmt.Println("Listening on", cfg.Address())
package config
