package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/networth"
	"github.com/etnz/networth/date"
)

// parseOrder parses a "TICKER SHARES PRICE YYYY-MM-DD" order.
func parseOrder(fields []string) (networth.Order, error) {
	if len(fields) != 4 {
		return networth.Order{}, fmt.Errorf("%w: want TICKER SHARES PRICE YYYY-MM-DD, got %d fields", networth.ErrInvalidInput, len(fields))
	}
	shares, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return networth.Order{}, fmt.Errorf("%w: shares %q is not a number", networth.ErrInvalidInput, fields[1])
	}
	price, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return networth.Order{}, fmt.Errorf("%w: price %q is not a number", networth.ErrInvalidInput, fields[2])
	}
	on, err := date.Parse(fields[3])
	if err != nil {
		return networth.Order{}, fmt.Errorf("%w: %w", networth.ErrInvalidInput, err)
	}
	return networth.Order{Ticker: fields[0], Shares: shares, Price: price, Date: on}, nil
}

// parseOrders reads one order per line. Blank lines and lines starting with '#' are ignored.
//
// Every line that can be parsed is returned, errors are reported with their line number.
func parseOrders(r io.Reader) ([]networth.Order, error) {
	var orders []networth.Order
	var errs []error
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		o, err := parseOrder(strings.Fields(line))
		if err != nil {
			errs = append(errs, fmt.Errorf("line %d: %w", n, err))
			continue
		}
		orders = append(orders, o)
	}
	if err := scanner.Err(); err != nil {
		errs = append(errs, err)
	}
	return orders, errors.Join(errs...)
}

// readOrders parses the orders of file, "-" is stdin.
func readOrders(file string) ([]networth.Order, error) {
	if file == "-" {
		return parseOrders(os.Stdin)
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseOrders(f)
}
