package service

import (
	"context"
	"errors"
	"testing"

	"gymadmin/gym-app/internal/repository/kv"
)

func newEquipmentService(t *testing.T) EquipmentService {
	t.Helper()
	store := newTestStore(t)
	return NewEquipmentService(
		kv.NewMachineTypeRepository(store),
		kv.NewMachineRepository(store),
		kv.NewMaintenanceRepository(store),
	)
}

func TestListMachinesResolvesTypeLabel(t *testing.T) {
	svc := newEquipmentService(t)
	ctx := context.Background()

	machineType, err := svc.CreateMachineType(ctx, "Treadmill", "")
	if err != nil {
		t.Fatalf("CreateMachineType: %v", err)
	}
	if _, err := svc.CreateMachine(ctx, "M1", machineType.ID, "3"); err != nil {
		t.Fatalf("CreateMachine: %v", err)
	}

	machines, err := svc.ListMachines(ctx)
	if err != nil {
		t.Fatalf("ListMachines: %v", err)
	}
	if len(machines) != 1 {
		t.Fatalf("ListMachines: %d machines, want 1", len(machines))
	}
	if machines[0].TypeLabel != "Treadmill" {
		t.Errorf("TypeLabel = %q, want Treadmill", machines[0].TypeLabel)
	}
}

// Deleting a type leaves referencing machines in place; their listing falls
// back to the unknown-type label instead of failing.
func TestListMachinesFallbackAfterTypeDelete(t *testing.T) {
	svc := newEquipmentService(t)
	ctx := context.Background()

	machineType, err := svc.CreateMachineType(ctx, "Treadmill", "")
	if err != nil {
		t.Fatalf("CreateMachineType: %v", err)
	}
	if _, err := svc.CreateMachine(ctx, "M1", machineType.ID, "3"); err != nil {
		t.Fatalf("CreateMachine: %v", err)
	}
	if err := svc.DeleteMachineType(ctx, machineType.ID); err != nil {
		t.Fatalf("DeleteMachineType: %v", err)
	}

	machines, err := svc.ListMachines(ctx)
	if err != nil {
		t.Fatalf("ListMachines: %v", err)
	}
	if len(machines) != 1 {
		t.Fatalf("ListMachines: %d machines, want 1", len(machines))
	}
	if machines[0].TypeLabel != UnknownTypeLabel {
		t.Errorf("TypeLabel = %q, want %q", machines[0].TypeLabel, UnknownTypeLabel)
	}
}

func TestListMaintenancesJoins(t *testing.T) {
	svc := newEquipmentService(t)
	ctx := context.Background()

	machineType, err := svc.CreateMachineType(ctx, "Press", "")
	if err != nil {
		t.Fatalf("CreateMachineType: %v", err)
	}
	machine, err := svc.CreateMachine(ctx, "M7", machineType.ID, "2")
	if err != nil {
		t.Fatalf("CreateMachine: %v", err)
	}
	if _, err := svc.CreateMaintenance(ctx, machine.ID, "2024-03-10", "Belt replaced"); err != nil {
		t.Fatalf("CreateMaintenance: %v", err)
	}
	// A record pointing at a machine that no longer exists.
	if _, err := svc.CreateMaintenance(ctx, "gone", "2024-03-11", "Lubrication"); err != nil {
		t.Fatalf("CreateMaintenance (dangling): %v", err)
	}

	records, err := svc.ListMaintenances(ctx)
	if err != nil {
		t.Fatalf("ListMaintenances: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("ListMaintenances: %d records, want 2", len(records))
	}
	if records[0].MachineCode != "M7" || records[0].TypeLabel != "Press" {
		t.Errorf("joined record = %+v", records[0])
	}
	if records[1].MachineCode != UnknownMachineLabel || records[1].TypeLabel != UnknownTypeLabel {
		t.Errorf("dangling record = %+v", records[1])
	}
}

func TestCreateMachineValidation(t *testing.T) {
	svc := newEquipmentService(t)
	ctx := context.Background()

	if _, err := svc.CreateMachine(ctx, "", "t1", "3"); !errors.Is(err, ErrValidationFailed) {
		t.Errorf("empty code: err = %v, want ErrValidationFailed", err)
	}
	if _, err := svc.CreateMachine(ctx, "M1", "", "3"); !errors.Is(err, ErrValidationFailed) {
		t.Errorf("empty type: err = %v, want ErrValidationFailed", err)
	}
	if _, err := svc.CreateMachine(ctx, "M1", "t1", ""); !errors.Is(err, ErrValidationFailed) {
		t.Errorf("empty room: err = %v, want ErrValidationFailed", err)
	}
}

func TestGetMaintenance(t *testing.T) {
	svc := newEquipmentService(t)
	ctx := context.Background()

	created, err := svc.CreateMaintenance(ctx, "m1", "2024-03-10", "Belt replaced")
	if err != nil {
		t.Fatalf("CreateMaintenance: %v", err)
	}

	got, err := svc.GetMaintenance(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetMaintenance: %v", err)
	}
	if *got != *created {
		t.Errorf("GetMaintenance = %+v, want %+v", *got, *created)
	}

	if _, err := svc.GetMaintenance(ctx, "missing"); !errors.Is(err, ErrMaintenanceNotFound) {
		t.Errorf("GetMaintenance miss: err = %v, want ErrMaintenanceNotFound", err)
	}
}

func TestGetMachineTypeNotFound(t *testing.T) {
	svc := newEquipmentService(t)

	if _, err := svc.GetMachineType(context.Background(), "missing"); !errors.Is(err, ErrMachineTypeNotFound) {
		t.Errorf("GetMachineType: err = %v, want ErrMachineTypeNotFound", err)
	}
}
