package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"areaadmin/internal/model"
	"areaadmin/internal/prompt"
	"areaadmin/internal/service/area"
	"areaadmin/pkg/code"
	"areaadmin/pkg/logger"
)

const (
	routeList   = "list"
	routeCreate = "create"
	routeEdit   = "edit/"
)

// shell plays the browser: it runs one command, then follows the route
// the views navigated to
type shell struct {
	out       io.Writer
	driver    prompt.Driver
	confirmer *prompt.Confirmer
	srv       area.AreaSrv
	ui        area.UI

	// pageSize the configured list page size, table.page_size
	pageSize int

	route string
	// list the view a route to the list reuses
	list *area.ListView
}

func (s *shell) ToList() {
	s.route = routeList
}

func (s *shell) ToCreate() {
	s.route = routeCreate
}

func (s *shell) ToEdit(pk string) {
	s.route = routeEdit + pk
}

func (s *shell) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("missing command")
	}
	cmd, rest := args[0], args[1:]
	var err error
	switch cmd {
	case "list":
		err = s.runList(ctx, rest)
	case "get":
		err = s.runGet(ctx, rest)
	case "add":
		err = s.runForm(ctx, "", true, rest)
	case "edit":
		var pk string
		if pk, err = onePK(cmd, rest); err == nil {
			err = s.runForm(ctx, pk, true, rest[1:])
		}
	case "create":
		err = s.runForm(ctx, "", false, rest)
	case "update":
		var pk string
		if pk, err = onePK(cmd, rest); err == nil {
			err = s.runForm(ctx, pk, false, rest[1:])
		}
	case "delete":
		err = s.runDelete(ctx, rest)
	default:
		err = fmt.Errorf("unknown command %q", cmd)
		fmt.Fprint(s.out, usage)
	}
	if ferr := s.follow(ctx); err == nil {
		err = ferr
	}
	return err
}

func (s *shell) follow(ctx context.Context) error {
	route := s.route
	s.route = ""
	switch {
	case route == routeList:
		if s.list == nil {
			s.list = s.srv.NewListView()
			if size := s.defaultPageSize(ctx); size != model.DefaultPageSize {
				if err := s.list.Change(ctx, model.DefaultCurrent, size, model.DefaultSortField,
					model.SortAsc, nil); err != nil {
					return err
				}
			}
		}
		if err := s.list.Load(ctx); err != nil {
			return err
		}
		renderList(s.out, s.list.Rows(), s.list.Total())
	case route == routeCreate:
		return s.runForm(ctx, "", true, nil)
	case strings.HasPrefix(route, routeEdit):
		return s.runForm(ctx, strings.TrimPrefix(route, routeEdit), true, nil)
	}
	return nil
}

func (s *shell) defaultPageSize(ctx context.Context) int {
	if s.pageSize == 0 {
		return model.DefaultPageSize
	}
	if !model.ValidPageSize(s.pageSize) {
		logger.From(ctx).Warn("unsupported table.page_size, using the default", zap.Int("page_size", s.pageSize))
		return model.DefaultPageSize
	}
	return s.pageSize
}

type filterFlag map[string]string

func (f filterFlag) String() string {
	parts := make([]string, 0, len(f))
	for k, v := range f {
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, ",")
}

func (f filterFlag) Set(value string) error {
	k, v, ok := strings.Cut(value, "=")
	if !ok || k == "" {
		return fmt.Errorf("filter %q is not name=value", value)
	}
	f[k] = v
	return nil
}

func (s *shell) runList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	page := fs.Int("page", model.DefaultCurrent, "page number")
	size := fs.Int("size", s.defaultPageSize(ctx), "page size, one of 10 20 50 100")
	sortField := fs.String("sort", model.DefaultSortField, "sort field")
	order := fs.String("order", string(model.SortAsc), "sort order, asc or desc")
	search := fs.String("search", "", "search text")
	filters := filterFlag{}
	fs.Var(filters, "filter", "column filter name=value, repeatable")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if !model.ValidPageSize(*size) {
		logger.From(ctx).Warn("unsupported page size, using the default", zap.Int("size", *size))
	}

	v := s.srv.NewListView()
	s.list = v
	if *search != "" {
		v.SetSearchText(*search)
		if err := v.Search(ctx); err != nil {
			return err
		}
	}
	if err := v.Change(ctx, *page, *size, *sortField, model.SortOrder(*order), filters); err != nil {
		return err
	}
	if v.Status() == area.StatusIdle {
		if err := v.Load(ctx); err != nil {
			return err
		}
	}
	renderList(s.out, v.Rows(), v.Total())
	return nil
}

func (s *shell) runGet(ctx context.Context, args []string) error {
	pk, err := onePK("get", args)
	if err != nil {
		return err
	}
	a, err := s.srv.Detail(ctx, pk)
	if err != nil {
		return err
	}
	renderArea(s.out, a)
	return nil
}

func (s *shell) runDelete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	yes := fs.Bool("y", false, "do not ask for confirmation")
	if err := fs.Parse(args); err != nil {
		return err
	}
	pk, err := onePK("delete", fs.Args())
	if err != nil {
		return err
	}
	s.confirmer.AutoYes = *yes
	v := s.srv.NewListView()
	s.list = v
	if err = v.Delete(ctx, pk); err != nil {
		return err
	}
	if v.Status() == area.StatusIdle {
		// declined, nothing was sent
		return nil
	}
	renderList(s.out, v.Rows(), v.Total())
	return nil
}

// runForm drives a create (pk empty) or edit form, interactively or from flags
func (s *shell) runForm(ctx context.Context, pk string, interactive bool, args []string) error {
	var f *area.FormView
	if pk == "" {
		f = s.srv.NewCreateForm()
	} else {
		f = s.srv.NewEditForm(pk)
		if err := f.Open(ctx); err != nil {
			return err
		}
	}

	if interactive {
		if err := prompt.FillForm(ctx, s.driver, f); err != nil {
			return err
		}
	} else if err := applyFlags(f, args); err != nil {
		return err
	}

	err := f.Submit(ctx)
	if code.KindOf(err) == code.KindValidation {
		fmt.Fprintln(s.out, "Please fix the following fields:")
		renderFieldErrors(s.out, f.FieldErrors())
	}
	return err
}

func applyFlags(f *area.FormView, args []string) error {
	values := f.Values()
	fs := flag.NewFlagSet("form", flag.ContinueOnError)
	id := fs.String("id", values.AreaID, "area id, create only")
	name := fs.String("name", values.AreaName, "area name")
	status := fs.String("status", values.Status.String(), "draft, active or inactive")
	enable := fs.Bool("enable", values.Enable, "whether the area is active")
	description := fs.String("description", "", "free text or JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	set := map[string]bool{}
	fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	if set["id"] || !f.IsEdit() {
		if err := f.SetAreaID(*id); err != nil {
			return err
		}
	}
	if err := f.SetAreaName(*name); err != nil {
		return err
	}
	if err := f.SetStatus(model.Status(*status)); err != nil {
		return err
	}
	if err := f.SetEnable(*enable); err != nil {
		return err
	}
	if set["description"] {
		return f.SetDescription(prompt.Description(*description))
	}
	return nil
}

func onePK(cmd string, args []string) (string, error) {
	if len(args) == 0 || args[0] == "" {
		return "", fmt.Errorf("%s needs the area key", cmd)
	}
	return args[0], nil
}
