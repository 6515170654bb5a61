// Package config provides configuration parsing for the slider server and
// CLI.
//
// The configuration is stored in slider.json. Every field is optional;
// absent fields keep the values from New.
//
// # Configuration File Structure
//
//	{
//	  "server": {
//	    "addr": ":3000",
//	    "title": "Slider",
//	    "readTimeout": "10s",
//	    "writeTimeout": "10s",
//	    "shutdownTimeout": "5s",
//	    "allowedOrigins": ["https://example.com"]
//	  },
//	  "slider": {
//	    "value": 2,
//	    "minimum": 0,
//	    "maximum": 5,
//	    "step": 1,
//	    "orientation": "vertical",
//	    "markSteps": true,
//	    "controlSize": "small"
//	  },
//	  "export": {
//	    "bucket": "widgets",
//	    "prefix": "demo/",
//	    "region": "us-east-1",
//	    "endpoint": "http://localhost:9000",
//	    "pathStyle": true
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
//	state, err := cfg.State()
package config
