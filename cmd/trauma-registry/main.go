package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"trauma-registry/internal/codes"
	"trauma-registry/internal/config"
	"trauma-registry/internal/domain"
	"trauma-registry/internal/export"
	"trauma-registry/internal/logger"
	"trauma-registry/internal/repository"
	"trauma-registry/internal/rut"
	"trauma-registry/internal/service"

	"go.uber.org/zap"
)

const usage = `usage: trauma-registry <command> [args]

commands:
  list                         print every patient record
  active                       print patients not yet recovered
  get <id>                     print one record
  search <term>                free-text search (name, RUT, injury)
  find <field> <value>         search one field: name|rut|injury-code|diagnosis|surgery-date
  create <name> <age> <rut> <dominance> [delay-days]
  delete <id>                  remove a record
  recovered <id>               mark a patient as recovered
  reactivate <id>              mark a patient as active again
  export <path>                write the Excel patient report
  validate <rut>               check a RUT's check digit
  codes [term]                 list injury codes, optionally filtered
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg := config.Load()
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, "trauma-registry")
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger init:", err)
		os.Exit(1)
	}
	defer log.Sync()

	repo, err := repository.NewFilePatientsRepository(cfg.DataDir, log)
	if err != nil {
		log.Fatal("open data directory", zap.Error(err))
	}
	registry := codes.NewRegistry()
	svc := service.NewPatientService(repo, registry, log)

	ctx := context.Background()
	if err := run(ctx, svc, registry, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, svc service.PatientService, registry *codes.Registry, cmd string, args []string) error {
	switch cmd {
	case "list":
		patients, err := svc.ListPatients(ctx)
		if err != nil {
			return err
		}
		printPatients(patients)
	case "active":
		patients, err := svc.ListActivePatients(ctx)
		if err != nil {
			return err
		}
		printPatients(patients)
	case "get":
		if len(args) != 1 {
			return fmt.Errorf("get: expected <id>")
		}
		p, err := svc.GetPatient(ctx, args[0])
		if err != nil {
			return err
		}
		if p == nil {
			return fmt.Errorf("no patient with id %s", args[0])
		}
		printPatients([]*domain.Patient{p})
	case "search":
		if len(args) != 1 {
			return fmt.Errorf("search: expected <term>")
		}
		patients, err := svc.SearchPatients(ctx, args[0])
		if err != nil {
			return err
		}
		printPatients(patients)
	case "find":
		if len(args) != 2 {
			return fmt.Errorf("find: expected <field> <value>")
		}
		patients, err := svc.SearchByField(ctx, service.SearchField(args[0]), args[1])
		if err != nil {
			return err
		}
		printPatients(patients)
	case "create":
		if len(args) < 4 {
			return fmt.Errorf("create: expected <name> <age> <rut> <dominance> [delay-days]")
		}
		age, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("create: bad age %q", args[1])
		}
		delay := 0
		if len(args) > 4 {
			if delay, err = strconv.Atoi(args[4]); err != nil {
				return fmt.Errorf("create: bad delay-days %q", args[4])
			}
		}
		p, err := svc.CreatePatient(ctx, service.CreatePatientRequest{
			Name:             args[0],
			Age:              age,
			RUT:              args[2],
			Dominance:        domain.Dominance(args[3]),
			SurgeryDelayDays: delay,
		})
		if err != nil {
			return err
		}
		fmt.Println(p.ID)
	case "delete":
		if len(args) != 1 {
			return fmt.Errorf("delete: expected <id>")
		}
		return svc.DeletePatient(ctx, args[0])
	case "recovered":
		if len(args) != 1 {
			return fmt.Errorf("recovered: expected <id>")
		}
		return svc.MarkRecovered(ctx, args[0])
	case "reactivate":
		if len(args) != 1 {
			return fmt.Errorf("reactivate: expected <id>")
		}
		return svc.MarkActive(ctx, args[0])
	case "export":
		if len(args) != 1 {
			return fmt.Errorf("export: expected <path>")
		}
		patients, err := svc.ListPatients(ctx)
		if err != nil {
			return err
		}
		path, err := export.WriteFile(args[0], patients)
		if err != nil {
			return err
		}
		fmt.Println("report written to", path)
	case "validate":
		if len(args) != 1 {
			return fmt.Errorf("validate: expected <rut>")
		}
		if rut.Valid(args[0]) {
			fmt.Println(rut.Format(args[0]), "valid")
		} else {
			fmt.Println(args[0], "invalid")
			os.Exit(1)
		}
	case "codes":
		term := ""
		if len(args) > 0 {
			term = args[0]
		}
		printCodes(registry.Search(term))
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

func printPatients(patients []*domain.Patient) {
	for _, p := range patients {
		injury := "-"
		if p.Injury != nil {
			injury = p.Injury.Name
			if p.Injury.OfficialCode != "" {
				injury += " (" + p.Injury.OfficialCode + ")"
			}
		}
		status := "active"
		if p.Recovered {
			status = "recovered"
		}
		fmt.Printf("%s  %-12s  %-24s  %s  [%s]\n",
			p.ID, rut.Format(p.RUT), p.Name, injury, status)
	}
	fmt.Printf("%d record(s)\n", len(patients))
}

func printCodes(entries map[string]string) {
	keys := make([]string, 0, len(entries))
	for code := range entries {
		keys = append(keys, code)
	}
	sort.Strings(keys)
	for _, code := range keys {
		fmt.Printf("%s  %s\n", code, strings.TrimSpace(entries[code]))
	}
}
