// Command promisedemo exercises the promise package across two goroutines:
// a producer that settles (or abandons) a promise after some simulated
// work, and a consumer that blocks on the future until the outcome lands.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/creachadair/promise"
	"go.uber.org/zap"
)

type DemoConf struct {
	delay   time.Duration
	fail    bool
	abandon bool
}

var log *zap.SugaredLogger

func init() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "initialize logger failed: %s", err)
		os.Exit(1)
	}
	log = logger.Sugar()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func RunDemo(conf DemoConf) {
	p := promise.New[int]()
	f, err := p.Future()
	if err != nil {
		log.Fatal("issue future: ", err)
	}

	done := make(chan struct{})
	go produce(p.Move(), conf, done)

	log.Info("consumer: waiting for data")
	if f.IsReady() {
		log.Info("consumer: data was ready immediately")
	}

	v, err := f.Get()
	switch {
	case errors.Is(err, promise.ErrBroken):
		log.Warn("consumer: producer abandoned the promise")
	case err != nil:
		log.Error("consumer: producer failed: ", err)
	default:
		log.Info("consumer: got value: ", v)
	}
	<-done
}

func produce(p *promise.Promise[int], conf DemoConf, done chan<- struct{}) {
	defer close(done)
	defer p.Release()

	log.Info("producer: working")
	time.Sleep(conf.delay)

	switch {
	case conf.abandon:
		log.Warn("producer: exiting without a result")
	case conf.fail:
		p.Fail(errors.New("producer failed"))
		log.Info("producer: error set")
	default:
		p.Set(42)
		log.Info("producer: data set")
	}
}
