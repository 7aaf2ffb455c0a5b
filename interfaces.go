package prtg

import "context"

// ManagementAPI defines the interface for PRTG management operations.
// This interface enables consumers to create mock implementations for
// testing.
//
// All methods mirror the corresponding methods on Client.
//
// Example usage with mocking frameworks:
//
//	// Using gomock:
//	//go:generate mockgen -destination=mocks/prtg_client.go -package=mocks github.com/CC-Digital-Innovation/go-prtg ManagementAPI
//
//	// Using testify/mock:
//	type MockClient struct {
//	    mock.Mock
//	}
//
//	func (m *MockClient) GetDevice(ctx context.Context, id int) (prtg.Entity, error) {
//	    args := m.Called(ctx, id)
//	    return args.Get(0).(prtg.Entity), args.Error(1)
//	}
type ManagementAPI interface {
	// Sensor tree operations

	// GetSensorTree returns the monitoring tree as raw XML, rooted at the
	// given group (0 = whole instance).
	GetSensorTree(ctx context.Context, groupID int) (string, error)

	// Probe operations

	// GetAllProbes returns all probes with their details.
	GetAllProbes(ctx context.Context) ([]Entity, error)

	// GetProbeByName returns the probe with the given name.
	GetProbeByName(ctx context.Context, name string) (Entity, error)

	// GetProbe returns one probe by id.
	GetProbe(ctx context.Context, id int) (Entity, error)

	// Group operations

	// GetAllGroups returns all groups with their details.
	GetAllGroups(ctx context.Context) ([]Entity, error)

	// GetGroupsByNameContaining returns the groups whose name contains
	// the given substring.
	GetGroupsByNameContaining(ctx context.Context, name string) ([]Entity, error)

	// GetGroupByName returns the group with the given name.
	GetGroupByName(ctx context.Context, name string) (Entity, error)

	// GetGroup returns one group by id.
	GetGroup(ctx context.Context, id int) (Entity, error)

	// AddGroup creates a group under the given parent and returns its
	// record once it is visible.
	AddGroup(ctx context.Context, name string, parentID int) (Entity, error)

	// CloneGroup duplicates a group under a new parent and returns the
	// new group's id.
	CloneGroup(ctx context.Context, name string, parentID, cloneID int) (int, error)

	// Device operations

	// GetAllDevices returns all devices with their details.
	GetAllDevices(ctx context.Context) ([]Entity, error)

	// GetDevicesByGroupID returns the devices under the given group.
	GetDevicesByGroupID(ctx context.Context, groupID int) ([]Entity, error)

	// GetDevicesByNameContaining returns the devices whose name contains
	// the given substring.
	GetDevicesByNameContaining(ctx context.Context, name string) ([]Entity, error)

	// GetDeviceByName returns the device with the given name.
	GetDeviceByName(ctx context.Context, name string) (Entity, error)

	// GetDevice returns one device by id.
	GetDevice(ctx context.Context, id int) (Entity, error)

	// AddDevice creates a device under the given group and returns its
	// record once it is visible.
	AddDevice(ctx context.Context, name, host string, parentID int, icon Icon) (Entity, error)

	// CloneDevice duplicates a device under a new parent and returns the
	// new device's id.
	CloneDevice(ctx context.Context, name, host string, parentID, cloneID int) (int, error)

	// DeviceURL returns the web interface URL of a device.
	DeviceURL(id int) string

	// Sensor operations

	// GetSensorsByName returns the sensors with the given name, narrowed
	// by optional group and device filters ("" = skip).
	GetSensorsByName(ctx context.Context, name, group, device string) ([]Entity, error)

	// GetSensorsByNameContaining returns the sensors whose name contains
	// the given substring, narrowed the same way.
	GetSensorsByNameContaining(ctx context.Context, name, group, device string) ([]Entity, error)

	// GetSensor returns one sensor by id.
	GetSensor(ctx context.Context, id int) (Entity, error)

	// Property and status operations

	// GetObjectProperty reads one settings property of any object.
	GetObjectProperty(ctx context.Context, id int, name string) (string, error)

	// GetObjectStatus reads one live status field of any object.
	GetObjectStatus(ctx context.Context, id int, name string) (string, error)

	// SetObjectProperty writes one settings property of any object.
	SetObjectProperty(ctx context.Context, id int, name, value string) error

	// GetHostname returns the hostname or IP address of a device.
	GetHostname(ctx context.Context, id int) (string, error)

	// GetServiceURL returns the service URL of an object.
	GetServiceURL(ctx context.Context, id int) (string, error)

	// SetHostname sets the hostname or IP address of a device.
	SetHostname(ctx context.Context, id int, host string) error

	// SetIcon sets the icon of a device.
	SetIcon(ctx context.Context, id int, icon Icon) error

	// SetLocation sets the location of an object.
	SetLocation(ctx context.Context, id int, location string) error

	// SetServiceURL sets the service URL of an object.
	SetServiceURL(ctx context.Context, id int, url string) error

	// SetTags replaces the tags of an object.
	SetTags(ctx context.Context, id int, tags []string) error

	// SetInheritLocationOff makes an object keep its own location.
	SetInheritLocationOff(ctx context.Context, id int) error

	// SetInheritLocationOn makes an object inherit the parent's location.
	SetInheritLocationOn(ctx context.Context, id int) error

	// Object actions

	// MoveObject moves an object under a new parent group.
	MoveObject(ctx context.Context, id, groupID int) error

	// PauseObject pauses monitoring of an object indefinitely.
	PauseObject(ctx context.Context, id int) error

	// PauseObjectFor pauses monitoring of an object for the given number
	// of minutes.
	PauseObjectFor(ctx context.Context, id, minutes int) error

	// ResumeObject resumes monitoring of a paused object.
	ResumeObject(ctx context.Context, id int) error

	// DeleteObject deletes an object and everything beneath it.
	DeleteObject(ctx context.Context, id int) error

	// SetPriority sets the priority (1-5) of an object.
	SetPriority(ctx context.Context, id, priority int) error
}
