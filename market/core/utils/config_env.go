package utils

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

func LookupEnvStr(name string, defaultValue string) string {
	v, ok := os.LookupEnv(name)
	if ok && v != "" {
		return v
	}

	return defaultValue
}

// HasEnv reports if the env var is set to a non empty value.
func HasEnv(name string) bool {
	v, ok := os.LookupEnv(name)
	return ok && v != ""
}

func LookupEnvUint64(name string, defaultValue uint64) uint64 {
	v, ok := os.LookupEnv(name)
	if ok && v != "" {
		vi, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			panic(fmt.Sprintf("parse %s with value %s to uint64 error: %v", name, v, err))
		}

		return vi
	}

	return defaultValue
}

func LookupEnvFloat64(name string, defaultValue float64) float64 {
	v, ok := os.LookupEnv(name)
	if ok && v != "" {
		vf, err := strconv.ParseFloat(v, 64)
		if err != nil {
			panic(fmt.Sprintf("parse %s with value %s to float64 error: %v", name, v, err))
		}

		return vf
	}

	return defaultValue
}

func LookupEnvBool(name string, defaultValue bool) bool {
	v, ok := os.LookupEnv(name)
	if ok && v != "" {
		return v == "true"
	}

	return defaultValue
}

func LookupEnvDuration(name string, defaultValue time.Duration) time.Duration {
	v, ok := os.LookupEnv(name)
	if ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(fmt.Sprintf("parse %s with value %s to duration error: %v", name, v, err))
		}

		return d
	}

	return defaultValue
}

// LookupEnvList splits a comma separated env value, empty items are dropped.
func LookupEnvList(name string, defaultValue []string) []string {
	v, ok := os.LookupEnv(name)
	if !ok || v == "" {
		return defaultValue
	}

	res := make([]string, 0, 4)
	for _, item := range strings.Split(v, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			res = append(res, item)
		}
	}

	return res
}
