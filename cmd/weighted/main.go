package main

import (
	"flag"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/onestraw/weighted"
	"github.com/onestraw/weighted/config"
	"github.com/onestraw/weighted/stats"
)

func main() {
	var (
		flagConfig = flag.String("config", "weighted.json", "json or yaml configuration file")
		flagMethod = flag.String("method", "", "override the configured selection method")
		flagRounds = flag.Int("rounds", 0, "override the configured number of selections")
	)
	flag.Parse()

	c, err := config.Load(*flagConfig)
	if err != nil {
		log.Fatalf("Load configuration error=%v", err)
	}

	method := c.Method
	if *flagMethod != "" {
		method = *flagMethod
	}
	if method == "" {
		method = weighted.MethodRoundRobin
	}
	rounds := c.Rounds
	if *flagRounds > 0 {
		rounds = *flagRounds
	}
	if rounds <= 0 {
		rounds = 100
	}

	s, err := weighted.New[string](method)
	if err != nil {
		log.Fatalf("New selector error=%v", err)
	}
	for _, item := range c.Items {
		if err := s.Add(item.Value, item.Weight); err != nil {
			log.Fatalf("Add item=%s weight=%d error=%v", item.Value, item.Weight, err)
		}
	}
	log.Infof("Method %s, pool [%v], total weight %d", method, s, s.TotalWeight())

	result := stats.New[string]()
	for i := 0; i < rounds; i++ {
		v, err := s.Next()
		if err != nil {
			log.Fatalf("Next error=%v", err)
		}
		result.Inc(v)
	}
	log.Infof("%d rounds: %v", rounds, result)

	for _, item := range c.Items {
		fmt.Printf("%-20s weight=%-4d selected=%-8d ratio=%.4f\n",
			item.Value, item.Weight, result.Count(item.Value), result.Ratio(item.Value))
	}
}
