package prtg

// Icon is a PRTG device icon filename, sent as the deviceicon_ form field
// when creating devices and as the deviceicon property on updates. Any
// filename present in the server's device icon set is accepted; the
// constants below cover common stock icons.
type Icon string

// Stock device icons shipped with PRTG.
const (
	IconServer      Icon = "A_Server_1.png"
	IconServer2     Icon = "A_Server_2.png"
	IconSwitch      Icon = "A_Switch_1.png"
	IconSwitch2     Icon = "A_Switch_2.png"
	IconFirewall    Icon = "A_Firewall_1.png"
	IconFirewall2   Icon = "A_Firewall_2.png"
	IconCamera      Icon = "A_Camera_1.png"
	IconPrinter     Icon = "A_Printer_1.png"
	IconWorkstation Icon = "A_Workstation_1.png"
	IconTelephone   Icon = "A_Telephone_1.png"
	IconHardware    Icon = "A_Hardware_1.png"
)

// DefaultIcon is applied when a device is added without an explicit icon.
const DefaultIcon = IconServer
