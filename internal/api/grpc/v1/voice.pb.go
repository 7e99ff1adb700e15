package v1

import (
	context "context"
	reflect "reflect"
	sync "sync"

	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
	proto "google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/runtime/protoimpl"
	"google.golang.org/protobuf/types/descriptorpb"
)

const (
	// Verify that this generated file is compatible with the proto package it is being compiled against.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that this generated file is compatible with the protoimpl package it is being compiled against.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type PingRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields
}

func (x *PingRequest) Reset() {
	*x = PingRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_voicebridge_voice_v1_proto_msgTypes[0]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *PingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PingRequest) ProtoMessage() {}

func (x *PingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_voicebridge_voice_v1_proto_msgTypes[0]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

type PingResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Version string `protobuf:"bytes,1,opt,name=version,proto3" json:"version,omitempty"`
}

func (x *PingResponse) Reset() {
	*x = PingResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_voicebridge_voice_v1_proto_msgTypes[1]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *PingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PingResponse) ProtoMessage() {}

func (x *PingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_voicebridge_voice_v1_proto_msgTypes[1]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *PingResponse) GetVersion() string {
	if x != nil {
		return x.Version
	}
	return ""
}

type PlayRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Title     string `protobuf:"bytes,1,opt,name=title,proto3" json:"title,omitempty"`
	SourceUrl string `protobuf:"bytes,2,opt,name=source_url,json=sourceUrl,proto3" json:"source_url,omitempty"`
}

func (x *PlayRequest) Reset() {
	*x = PlayRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_voicebridge_voice_v1_proto_msgTypes[2]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *PlayRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PlayRequest) ProtoMessage() {}

func (x *PlayRequest) ProtoReflect() protoreflect.Message {
	mi := &file_voicebridge_voice_v1_proto_msgTypes[2]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *PlayRequest) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *PlayRequest) GetSourceUrl() string {
	if x != nil {
		return x.SourceUrl
	}
	return ""
}

type CommandResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Ok      bool   `protobuf:"varint,1,opt,name=ok,proto3" json:"ok,omitempty"`
	Message string `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
}

func (x *CommandResponse) Reset() {
	*x = CommandResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_voicebridge_voice_v1_proto_msgTypes[3]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *CommandResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CommandResponse) ProtoMessage() {}

func (x *CommandResponse) ProtoReflect() protoreflect.Message {
	mi := &file_voicebridge_voice_v1_proto_msgTypes[3]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *CommandResponse) GetOk() bool {
	if x != nil {
		return x.Ok
	}
	return false
}

func (x *CommandResponse) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type PauseRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields
}

func (x *PauseRequest) Reset() {
	*x = PauseRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_voicebridge_voice_v1_proto_msgTypes[4]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *PauseRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PauseRequest) ProtoMessage() {}

func (x *PauseRequest) ProtoReflect() protoreflect.Message {
	mi := &file_voicebridge_voice_v1_proto_msgTypes[4]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

type ResumeRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields
}

func (x *ResumeRequest) Reset() {
	*x = ResumeRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_voicebridge_voice_v1_proto_msgTypes[5]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ResumeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResumeRequest) ProtoMessage() {}

func (x *ResumeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_voicebridge_voice_v1_proto_msgTypes[5]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

type StopRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields
}

func (x *StopRequest) Reset() {
	*x = StopRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_voicebridge_voice_v1_proto_msgTypes[6]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *StopRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StopRequest) ProtoMessage() {}

func (x *StopRequest) ProtoReflect() protoreflect.Message {
	mi := &file_voicebridge_voice_v1_proto_msgTypes[6]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

type SkipRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields
}

func (x *SkipRequest) Reset() {
	*x = SkipRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_voicebridge_voice_v1_proto_msgTypes[7]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *SkipRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SkipRequest) ProtoMessage() {}

func (x *SkipRequest) ProtoReflect() protoreflect.Message {
	mi := &file_voicebridge_voice_v1_proto_msgTypes[7]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

type SetVolumeRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	VolumePercent int32 `protobuf:"varint,1,opt,name=volume_percent,json=volumePercent,proto3" json:"volume_percent,omitempty"`
}

func (x *SetVolumeRequest) Reset() {
	*x = SetVolumeRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_voicebridge_voice_v1_proto_msgTypes[8]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *SetVolumeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetVolumeRequest) ProtoMessage() {}

func (x *SetVolumeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_voicebridge_voice_v1_proto_msgTypes[8]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *SetVolumeRequest) GetVolumePercent() int32 {
	if x != nil {
		return x.VolumePercent
	}
	return 0
}

type StatusRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields
}

func (x *StatusRequest) Reset() {
	*x = StatusRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_voicebridge_voice_v1_proto_msgTypes[9]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *StatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StatusRequest) ProtoMessage() {}

func (x *StatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_voicebridge_voice_v1_proto_msgTypes[9]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

type StatusResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	State               string `protobuf:"bytes,1,opt,name=state,proto3" json:"state,omitempty"`
	NowPlayingTitle     string `protobuf:"bytes,2,opt,name=now_playing_title,json=nowPlayingTitle,proto3" json:"now_playing_title,omitempty"`
	NowPlayingSourceUrl string `protobuf:"bytes,3,opt,name=now_playing_source_url,json=nowPlayingSourceUrl,proto3" json:"now_playing_source_url,omitempty"`
	VolumePercent       int32  `protobuf:"varint,4,opt,name=volume_percent,json=volumePercent,proto3" json:"volume_percent,omitempty"`
}

func (x *StatusResponse) Reset() {
	*x = StatusResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_voicebridge_voice_v1_proto_msgTypes[10]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *StatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StatusResponse) ProtoMessage() {}

func (x *StatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_voicebridge_voice_v1_proto_msgTypes[10]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *StatusResponse) GetState() string {
	if x != nil {
		return x.State
	}
	return ""
}

func (x *StatusResponse) GetNowPlayingTitle() string {
	if x != nil {
		return x.NowPlayingTitle
	}
	return ""
}

func (x *StatusResponse) GetNowPlayingSourceUrl() string {
	if x != nil {
		return x.NowPlayingSourceUrl
	}
	return ""
}

func (x *StatusResponse) GetVolumePercent() int32 {
	if x != nil {
		return x.VolumePercent
	}
	return 0
}

type SetAudioFxRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	SetPan       bool    `protobuf:"varint,1,opt,name=set_pan,json=setPan,proto3" json:"set_pan,omitempty"`
	Pan          float64 `protobuf:"fixed64,2,opt,name=pan,proto3" json:"pan,omitempty"`
	SetWidth     bool    `protobuf:"varint,3,opt,name=set_width,json=setWidth,proto3" json:"set_width,omitempty"`
	Width        float64 `protobuf:"fixed64,4,opt,name=width,proto3" json:"width,omitempty"`
	SetSwapLr    bool    `protobuf:"varint,5,opt,name=set_swap_lr,json=setSwapLr,proto3" json:"set_swap_lr,omitempty"`
	SwapLr       bool    `protobuf:"varint,6,opt,name=swap_lr,json=swapLr,proto3" json:"swap_lr,omitempty"`
	SetBassDb    bool    `protobuf:"varint,7,opt,name=set_bass_db,json=setBassDb,proto3" json:"set_bass_db,omitempty"`
	BassDb       float64 `protobuf:"fixed64,8,opt,name=bass_db,json=bassDb,proto3" json:"bass_db,omitempty"`
	SetReverbMix bool    `protobuf:"varint,9,opt,name=set_reverb_mix,json=setReverbMix,proto3" json:"set_reverb_mix,omitempty"`
	ReverbMix    float64 `protobuf:"fixed64,10,opt,name=reverb_mix,json=reverbMix,proto3" json:"reverb_mix,omitempty"`
}

func (x *SetAudioFxRequest) Reset() {
	*x = SetAudioFxRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_voicebridge_voice_v1_proto_msgTypes[11]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *SetAudioFxRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetAudioFxRequest) ProtoMessage() {}

func (x *SetAudioFxRequest) ProtoReflect() protoreflect.Message {
	mi := &file_voicebridge_voice_v1_proto_msgTypes[11]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *SetAudioFxRequest) GetSetPan() bool {
	if x != nil {
		return x.SetPan
	}
	return false
}

func (x *SetAudioFxRequest) GetPan() float64 {
	if x != nil {
		return x.Pan
	}
	return 0
}

func (x *SetAudioFxRequest) GetSetWidth() bool {
	if x != nil {
		return x.SetWidth
	}
	return false
}

func (x *SetAudioFxRequest) GetWidth() float64 {
	if x != nil {
		return x.Width
	}
	return 0
}

func (x *SetAudioFxRequest) GetSetSwapLr() bool {
	if x != nil {
		return x.SetSwapLr
	}
	return false
}

func (x *SetAudioFxRequest) GetSwapLr() bool {
	if x != nil {
		return x.SwapLr
	}
	return false
}

func (x *SetAudioFxRequest) GetSetBassDb() bool {
	if x != nil {
		return x.SetBassDb
	}
	return false
}

func (x *SetAudioFxRequest) GetBassDb() float64 {
	if x != nil {
		return x.BassDb
	}
	return 0
}

func (x *SetAudioFxRequest) GetSetReverbMix() bool {
	if x != nil {
		return x.SetReverbMix
	}
	return false
}

func (x *SetAudioFxRequest) GetReverbMix() float64 {
	if x != nil {
		return x.ReverbMix
	}
	return 0
}

type GetAudioFxRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields
}

func (x *GetAudioFxRequest) Reset() {
	*x = GetAudioFxRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_voicebridge_voice_v1_proto_msgTypes[12]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *GetAudioFxRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetAudioFxRequest) ProtoMessage() {}

func (x *GetAudioFxRequest) ProtoReflect() protoreflect.Message {
	mi := &file_voicebridge_voice_v1_proto_msgTypes[12]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

type AudioFxResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Pan       float64 `protobuf:"fixed64,1,opt,name=pan,proto3" json:"pan,omitempty"`
	Width     float64 `protobuf:"fixed64,2,opt,name=width,proto3" json:"width,omitempty"`
	SwapLr    bool    `protobuf:"varint,3,opt,name=swap_lr,json=swapLr,proto3" json:"swap_lr,omitempty"`
	BassDb    float64 `protobuf:"fixed64,4,opt,name=bass_db,json=bassDb,proto3" json:"bass_db,omitempty"`
	ReverbMix float64 `protobuf:"fixed64,5,opt,name=reverb_mix,json=reverbMix,proto3" json:"reverb_mix,omitempty"`
}

func (x *AudioFxResponse) Reset() {
	*x = AudioFxResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_voicebridge_voice_v1_proto_msgTypes[13]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *AudioFxResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AudioFxResponse) ProtoMessage() {}

func (x *AudioFxResponse) ProtoReflect() protoreflect.Message {
	mi := &file_voicebridge_voice_v1_proto_msgTypes[13]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *AudioFxResponse) GetPan() float64 {
	if x != nil {
		return x.Pan
	}
	return 0
}

func (x *AudioFxResponse) GetWidth() float64 {
	if x != nil {
		return x.Width
	}
	return 0
}

func (x *AudioFxResponse) GetSwapLr() bool {
	if x != nil {
		return x.SwapLr
	}
	return false
}

func (x *AudioFxResponse) GetBassDb() float64 {
	if x != nil {
		return x.BassDb
	}
	return 0
}

func (x *AudioFxResponse) GetReverbMix() float64 {
	if x != nil {
		return x.ReverbMix
	}
	return 0
}

type SubscribeRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields
}

func (x *SubscribeRequest) Reset() {
	*x = SubscribeRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_voicebridge_voice_v1_proto_msgTypes[14]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *SubscribeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubscribeRequest) ProtoMessage() {}

func (x *SubscribeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_voicebridge_voice_v1_proto_msgTypes[14]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

type Event struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Kind   string `protobuf:"bytes,1,opt,name=kind,proto3" json:"kind,omitempty"`
	Detail string `protobuf:"bytes,2,opt,name=detail,proto3" json:"detail,omitempty"`
}

func (x *Event) Reset() {
	*x = Event{}
	if protoimpl.UnsafeEnabled {
		mi := &file_voicebridge_voice_v1_proto_msgTypes[15]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *Event) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Event) ProtoMessage() {}

func (x *Event) ProtoReflect() protoreflect.Message {
	mi := &file_voicebridge_voice_v1_proto_msgTypes[15]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *Event) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *Event) GetDetail() string {
	if x != nil {
		return x.Detail
	}
	return ""
}

var File_voicebridge_voice_v1_proto protoreflect.FileDescriptor

var (
	file_voicebridge_voice_v1_proto_once    sync.Once
	file_voicebridge_voice_v1_proto_rawDesc []byte
)

func file_voicebridge_voice_v1_proto_rawDescGZIP() []byte {
	file_voicebridge_voice_v1_proto_once.Do(func() {
		file_voicebridge_voice_v1_proto_rawDesc = protoimpl.X.CompressGZIP(file_voicebridge_voice_v1_proto_rawDesc)
	})
	return file_voicebridge_voice_v1_proto_rawDesc
}

var file_voicebridge_voice_v1_proto_msgTypes = make([]protoimpl.MessageInfo, 16)
var file_voicebridge_voice_v1_proto_goTypes = []interface{}{
	(*PingRequest)(nil),       // 0: voicebridge.voice.v1.PingRequest
	(*PingResponse)(nil),      // 1: voicebridge.voice.v1.PingResponse
	(*PlayRequest)(nil),       // 2: voicebridge.voice.v1.PlayRequest
	(*CommandResponse)(nil),   // 3: voicebridge.voice.v1.CommandResponse
	(*PauseRequest)(nil),      // 4: voicebridge.voice.v1.PauseRequest
	(*ResumeRequest)(nil),     // 5: voicebridge.voice.v1.ResumeRequest
	(*StopRequest)(nil),       // 6: voicebridge.voice.v1.StopRequest
	(*SkipRequest)(nil),       // 7: voicebridge.voice.v1.SkipRequest
	(*SetVolumeRequest)(nil),  // 8: voicebridge.voice.v1.SetVolumeRequest
	(*StatusRequest)(nil),     // 9: voicebridge.voice.v1.StatusRequest
	(*StatusResponse)(nil),    // 10: voicebridge.voice.v1.StatusResponse
	(*SetAudioFxRequest)(nil), // 11: voicebridge.voice.v1.SetAudioFxRequest
	(*GetAudioFxRequest)(nil), // 12: voicebridge.voice.v1.GetAudioFxRequest
	(*AudioFxResponse)(nil),   // 13: voicebridge.voice.v1.AudioFxResponse
	(*SubscribeRequest)(nil),  // 14: voicebridge.voice.v1.SubscribeRequest
	(*Event)(nil),             // 15: voicebridge.voice.v1.Event
}
var file_voicebridge_voice_v1_proto_depIdxs = []int32{
	0,  // 0: voicebridge.voice.v1.VoiceService.Ping:input_type -> voicebridge.voice.v1.PingRequest
	2,  // 1: voicebridge.voice.v1.VoiceService.Play:input_type -> voicebridge.voice.v1.PlayRequest
	4,  // 2: voicebridge.voice.v1.VoiceService.Pause:input_type -> voicebridge.voice.v1.PauseRequest
	5,  // 3: voicebridge.voice.v1.VoiceService.Resume:input_type -> voicebridge.voice.v1.ResumeRequest
	6,  // 4: voicebridge.voice.v1.VoiceService.Stop:input_type -> voicebridge.voice.v1.StopRequest
	7,  // 5: voicebridge.voice.v1.VoiceService.Skip:input_type -> voicebridge.voice.v1.SkipRequest
	8,  // 6: voicebridge.voice.v1.VoiceService.SetVolume:input_type -> voicebridge.voice.v1.SetVolumeRequest
	9,  // 7: voicebridge.voice.v1.VoiceService.GetStatus:input_type -> voicebridge.voice.v1.StatusRequest
	11, // 8: voicebridge.voice.v1.VoiceService.SetAudioFx:input_type -> voicebridge.voice.v1.SetAudioFxRequest
	12, // 9: voicebridge.voice.v1.VoiceService.GetAudioFx:input_type -> voicebridge.voice.v1.GetAudioFxRequest
	14, // 10: voicebridge.voice.v1.VoiceService.SubscribeEvents:input_type -> voicebridge.voice.v1.SubscribeRequest
	1,  // 11: voicebridge.voice.v1.VoiceService.Ping:output_type -> voicebridge.voice.v1.PingResponse
	3,  // 12: voicebridge.voice.v1.VoiceService.Play:output_type -> voicebridge.voice.v1.CommandResponse
	3,  // 13: voicebridge.voice.v1.VoiceService.Pause:output_type -> voicebridge.voice.v1.CommandResponse
	3,  // 14: voicebridge.voice.v1.VoiceService.Resume:output_type -> voicebridge.voice.v1.CommandResponse
	3,  // 15: voicebridge.voice.v1.VoiceService.Stop:output_type -> voicebridge.voice.v1.CommandResponse
	3,  // 16: voicebridge.voice.v1.VoiceService.Skip:output_type -> voicebridge.voice.v1.CommandResponse
	3,  // 17: voicebridge.voice.v1.VoiceService.SetVolume:output_type -> voicebridge.voice.v1.CommandResponse
	10, // 18: voicebridge.voice.v1.VoiceService.GetStatus:output_type -> voicebridge.voice.v1.StatusResponse
	13, // 19: voicebridge.voice.v1.VoiceService.SetAudioFx:output_type -> voicebridge.voice.v1.AudioFxResponse
	13, // 20: voicebridge.voice.v1.VoiceService.GetAudioFx:output_type -> voicebridge.voice.v1.AudioFxResponse
	15, // 21: voicebridge.voice.v1.VoiceService.SubscribeEvents:output_type -> voicebridge.voice.v1.Event
	11, // [11:22] is the sub-list for method output_type
	0,  // [0:11] is the sub-list for method input_type
	0,  // [0:0] is the sub-list for extension type_name
	0,  // [0:0] is the sub-list for extension extendee
	0,  // [0:0] is the sub-list for field type_name
}

func init() {
	file_voicebridge_voice_v1_proto_init()
}

func file_voicebridge_voice_v1_proto_init() {
	if File_voicebridge_voice_v1_proto != nil {
		return
	}

	if !protoimpl.UnsafeEnabled {
		file_voicebridge_voice_v1_proto_msgTypes[0].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*PingRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_voicebridge_voice_v1_proto_msgTypes[1].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*PingResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_voicebridge_voice_v1_proto_msgTypes[2].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*PlayRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_voicebridge_voice_v1_proto_msgTypes[3].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*CommandResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_voicebridge_voice_v1_proto_msgTypes[4].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*PauseRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_voicebridge_voice_v1_proto_msgTypes[5].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*ResumeRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_voicebridge_voice_v1_proto_msgTypes[6].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*StopRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_voicebridge_voice_v1_proto_msgTypes[7].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*SkipRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_voicebridge_voice_v1_proto_msgTypes[8].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*SetVolumeRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_voicebridge_voice_v1_proto_msgTypes[9].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*StatusRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_voicebridge_voice_v1_proto_msgTypes[10].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*StatusResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_voicebridge_voice_v1_proto_msgTypes[11].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*SetAudioFxRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_voicebridge_voice_v1_proto_msgTypes[12].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*GetAudioFxRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_voicebridge_voice_v1_proto_msgTypes[13].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*AudioFxResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_voicebridge_voice_v1_proto_msgTypes[14].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*SubscribeRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_voicebridge_voice_v1_proto_msgTypes[15].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*Event); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
	}

	fd := &descriptorpb.FileDescriptorProto{
		Syntax:  proto.String("proto3"),
		Name:    proto.String("voicebridge/voice/v1/voice.proto"),
		Package: proto.String("voicebridge.voice.v1"),
		MessageType: []*descriptorpb.DescriptorProto{
			{Name: proto.String("PingRequest")},
			{
				Name: proto.String("PingResponse"),
				Field: []*descriptorpb.FieldDescriptorProto{
					{Name: proto.String("version"), Number: proto.Int32(1), Type: descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum()},
				},
			},
			{
				Name: proto.String("PlayRequest"),
				Field: []*descriptorpb.FieldDescriptorProto{
					{Name: proto.String("title"), Number: proto.Int32(1), Type: descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum()},
					{Name: proto.String("source_url"), Number: proto.Int32(2), Type: descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum()},
				},
			},
			{
				Name: proto.String("CommandResponse"),
				Field: []*descriptorpb.FieldDescriptorProto{
					{Name: proto.String("ok"), Number: proto.Int32(1), Type: descriptorpb.FieldDescriptorProto_TYPE_BOOL.Enum()},
					{Name: proto.String("message"), Number: proto.Int32(2), Type: descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum()},
				},
			},
			{Name: proto.String("PauseRequest")},
			{Name: proto.String("ResumeRequest")},
			{Name: proto.String("StopRequest")},
			{Name: proto.String("SkipRequest")},
			{
				Name: proto.String("SetVolumeRequest"),
				Field: []*descriptorpb.FieldDescriptorProto{
					{Name: proto.String("volume_percent"), Number: proto.Int32(1), Type: descriptorpb.FieldDescriptorProto_TYPE_INT32.Enum()},
				},
			},
			{Name: proto.String("StatusRequest")},
			{
				Name: proto.String("StatusResponse"),
				Field: []*descriptorpb.FieldDescriptorProto{
					{Name: proto.String("state"), Number: proto.Int32(1), Type: descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum()},
					{Name: proto.String("now_playing_title"), Number: proto.Int32(2), Type: descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum()},
					{Name: proto.String("now_playing_source_url"), Number: proto.Int32(3), Type: descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum()},
					{Name: proto.String("volume_percent"), Number: proto.Int32(4), Type: descriptorpb.FieldDescriptorProto_TYPE_INT32.Enum()},
				},
			},
			{
				Name: proto.String("SetAudioFxRequest"),
				Field: []*descriptorpb.FieldDescriptorProto{
					{Name: proto.String("set_pan"), Number: proto.Int32(1), Type: descriptorpb.FieldDescriptorProto_TYPE_BOOL.Enum()},
					{Name: proto.String("pan"), Number: proto.Int32(2), Type: descriptorpb.FieldDescriptorProto_TYPE_DOUBLE.Enum()},
					{Name: proto.String("set_width"), Number: proto.Int32(3), Type: descriptorpb.FieldDescriptorProto_TYPE_BOOL.Enum()},
					{Name: proto.String("width"), Number: proto.Int32(4), Type: descriptorpb.FieldDescriptorProto_TYPE_DOUBLE.Enum()},
					{Name: proto.String("set_swap_lr"), Number: proto.Int32(5), Type: descriptorpb.FieldDescriptorProto_TYPE_BOOL.Enum()},
					{Name: proto.String("swap_lr"), Number: proto.Int32(6), Type: descriptorpb.FieldDescriptorProto_TYPE_BOOL.Enum()},
					{Name: proto.String("set_bass_db"), Number: proto.Int32(7), Type: descriptorpb.FieldDescriptorProto_TYPE_BOOL.Enum()},
					{Name: proto.String("bass_db"), Number: proto.Int32(8), Type: descriptorpb.FieldDescriptorProto_TYPE_DOUBLE.Enum()},
					{Name: proto.String("set_reverb_mix"), Number: proto.Int32(9), Type: descriptorpb.FieldDescriptorProto_TYPE_BOOL.Enum()},
					{Name: proto.String("reverb_mix"), Number: proto.Int32(10), Type: descriptorpb.FieldDescriptorProto_TYPE_DOUBLE.Enum()},
				},
			},
			{Name: proto.String("GetAudioFxRequest")},
			{
				Name: proto.String("AudioFxResponse"),
				Field: []*descriptorpb.FieldDescriptorProto{
					{Name: proto.String("pan"), Number: proto.Int32(1), Type: descriptorpb.FieldDescriptorProto_TYPE_DOUBLE.Enum()},
					{Name: proto.String("width"), Number: proto.Int32(2), Type: descriptorpb.FieldDescriptorProto_TYPE_DOUBLE.Enum()},
					{Name: proto.String("swap_lr"), Number: proto.Int32(3), Type: descriptorpb.FieldDescriptorProto_TYPE_BOOL.Enum()},
					{Name: proto.String("bass_db"), Number: proto.Int32(4), Type: descriptorpb.FieldDescriptorProto_TYPE_DOUBLE.Enum()},
					{Name: proto.String("reverb_mix"), Number: proto.Int32(5), Type: descriptorpb.FieldDescriptorProto_TYPE_DOUBLE.Enum()},
				},
			},
			{Name: proto.String("SubscribeRequest")},
			{
				Name: proto.String("Event"),
				Field: []*descriptorpb.FieldDescriptorProto{
					{Name: proto.String("kind"), Number: proto.Int32(1), Type: descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum()},
					{Name: proto.String("detail"), Number: proto.Int32(2), Type: descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum()},
				},
			},
		},
		Service: []*descriptorpb.ServiceDescriptorProto{
			{
				Name: proto.String("VoiceService"),
				Method: []*descriptorpb.MethodDescriptorProto{
					{
						Name:       proto.String("Ping"),
						InputType:  proto.String(".voicebridge.voice.v1.PingRequest"),
						OutputType: proto.String(".voicebridge.voice.v1.PingResponse"),
					},
					{
						Name:       proto.String("Play"),
						InputType:  proto.String(".voicebridge.voice.v1.PlayRequest"),
						OutputType: proto.String(".voicebridge.voice.v1.CommandResponse"),
					},
					{
						Name:       proto.String("Pause"),
						InputType:  proto.String(".voicebridge.voice.v1.PauseRequest"),
						OutputType: proto.String(".voicebridge.voice.v1.CommandResponse"),
					},
					{
						Name:       proto.String("Resume"),
						InputType:  proto.String(".voicebridge.voice.v1.ResumeRequest"),
						OutputType: proto.String(".voicebridge.voice.v1.CommandResponse"),
					},
					{
						Name:       proto.String("Stop"),
						InputType:  proto.String(".voicebridge.voice.v1.StopRequest"),
						OutputType: proto.String(".voicebridge.voice.v1.CommandResponse"),
					},
					{
						Name:       proto.String("Skip"),
						InputType:  proto.String(".voicebridge.voice.v1.SkipRequest"),
						OutputType: proto.String(".voicebridge.voice.v1.CommandResponse"),
					},
					{
						Name:       proto.String("SetVolume"),
						InputType:  proto.String(".voicebridge.voice.v1.SetVolumeRequest"),
						OutputType: proto.String(".voicebridge.voice.v1.CommandResponse"),
					},
					{
						Name:       proto.String("GetStatus"),
						InputType:  proto.String(".voicebridge.voice.v1.StatusRequest"),
						OutputType: proto.String(".voicebridge.voice.v1.StatusResponse"),
					},
					{
						Name:       proto.String("SetAudioFx"),
						InputType:  proto.String(".voicebridge.voice.v1.SetAudioFxRequest"),
						OutputType: proto.String(".voicebridge.voice.v1.AudioFxResponse"),
					},
					{
						Name:       proto.String("GetAudioFx"),
						InputType:  proto.String(".voicebridge.voice.v1.GetAudioFxRequest"),
						OutputType: proto.String(".voicebridge.voice.v1.AudioFxResponse"),
					},
					{
						Name:            proto.String("SubscribeEvents"),
						InputType:       proto.String(".voicebridge.voice.v1.SubscribeRequest"),
						OutputType:      proto.String(".voicebridge.voice.v1.Event"),
						ServerStreaming: proto.Bool(true),
					},
				},
			},
		},
	}

	rawDesc, err := proto.Marshal(fd)
	if err != nil {
		panic(err)
	}
	file_voicebridge_voice_v1_proto_rawDesc = rawDesc

	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: rawDesc,
			NumEnums:      0,
			NumMessages:   16,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_voicebridge_voice_v1_proto_goTypes,
		DependencyIndexes: file_voicebridge_voice_v1_proto_depIdxs,
		MessageInfos:      file_voicebridge_voice_v1_proto_msgTypes,
	}.Build()

	File_voicebridge_voice_v1_proto = out.File
	file_voicebridge_voice_v1_proto_rawDesc = nil
}

// gRPC client and server interfaces.

type VoiceServiceClient interface {
	Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error)
	Play(ctx context.Context, in *PlayRequest, opts ...grpc.CallOption) (*CommandResponse, error)
	Pause(ctx context.Context, in *PauseRequest, opts ...grpc.CallOption) (*CommandResponse, error)
	Resume(ctx context.Context, in *ResumeRequest, opts ...grpc.CallOption) (*CommandResponse, error)
	Stop(ctx context.Context, in *StopRequest, opts ...grpc.CallOption) (*CommandResponse, error)
	Skip(ctx context.Context, in *SkipRequest, opts ...grpc.CallOption) (*CommandResponse, error)
	SetVolume(ctx context.Context, in *SetVolumeRequest, opts ...grpc.CallOption) (*CommandResponse, error)
	GetStatus(ctx context.Context, in *StatusRequest, opts ...grpc.CallOption) (*StatusResponse, error)
	SetAudioFx(ctx context.Context, in *SetAudioFxRequest, opts ...grpc.CallOption) (*AudioFxResponse, error)
	GetAudioFx(ctx context.Context, in *GetAudioFxRequest, opts ...grpc.CallOption) (*AudioFxResponse, error)
	SubscribeEvents(ctx context.Context, in *SubscribeRequest, opts ...grpc.CallOption) (VoiceService_SubscribeEventsClient, error)
}

type voiceServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewVoiceServiceClient(cc grpc.ClientConnInterface) VoiceServiceClient {
	return &voiceServiceClient{cc}
}

func (c *voiceServiceClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	out := new(PingResponse)
	err := c.cc.Invoke(ctx, "/voicebridge.voice.v1.VoiceService/Ping", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *voiceServiceClient) Play(ctx context.Context, in *PlayRequest, opts ...grpc.CallOption) (*CommandResponse, error) {
	out := new(CommandResponse)
	err := c.cc.Invoke(ctx, "/voicebridge.voice.v1.VoiceService/Play", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *voiceServiceClient) Pause(ctx context.Context, in *PauseRequest, opts ...grpc.CallOption) (*CommandResponse, error) {
	out := new(CommandResponse)
	err := c.cc.Invoke(ctx, "/voicebridge.voice.v1.VoiceService/Pause", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *voiceServiceClient) Resume(ctx context.Context, in *ResumeRequest, opts ...grpc.CallOption) (*CommandResponse, error) {
	out := new(CommandResponse)
	err := c.cc.Invoke(ctx, "/voicebridge.voice.v1.VoiceService/Resume", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *voiceServiceClient) Stop(ctx context.Context, in *StopRequest, opts ...grpc.CallOption) (*CommandResponse, error) {
	out := new(CommandResponse)
	err := c.cc.Invoke(ctx, "/voicebridge.voice.v1.VoiceService/Stop", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *voiceServiceClient) Skip(ctx context.Context, in *SkipRequest, opts ...grpc.CallOption) (*CommandResponse, error) {
	out := new(CommandResponse)
	err := c.cc.Invoke(ctx, "/voicebridge.voice.v1.VoiceService/Skip", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *voiceServiceClient) SetVolume(ctx context.Context, in *SetVolumeRequest, opts ...grpc.CallOption) (*CommandResponse, error) {
	out := new(CommandResponse)
	err := c.cc.Invoke(ctx, "/voicebridge.voice.v1.VoiceService/SetVolume", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *voiceServiceClient) GetStatus(ctx context.Context, in *StatusRequest, opts ...grpc.CallOption) (*StatusResponse, error) {
	out := new(StatusResponse)
	err := c.cc.Invoke(ctx, "/voicebridge.voice.v1.VoiceService/GetStatus", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *voiceServiceClient) SetAudioFx(ctx context.Context, in *SetAudioFxRequest, opts ...grpc.CallOption) (*AudioFxResponse, error) {
	out := new(AudioFxResponse)
	err := c.cc.Invoke(ctx, "/voicebridge.voice.v1.VoiceService/SetAudioFx", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *voiceServiceClient) GetAudioFx(ctx context.Context, in *GetAudioFxRequest, opts ...grpc.CallOption) (*AudioFxResponse, error) {
	out := new(AudioFxResponse)
	err := c.cc.Invoke(ctx, "/voicebridge.voice.v1.VoiceService/GetAudioFx", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *voiceServiceClient) SubscribeEvents(ctx context.Context, in *SubscribeRequest, opts ...grpc.CallOption) (VoiceService_SubscribeEventsClient, error) {
	stream, err := c.cc.NewStream(ctx, &VoiceService_ServiceDesc.Streams[0], "/voicebridge.voice.v1.VoiceService/SubscribeEvents", opts...)
	if err != nil {
		return nil, err
	}
	x := &voiceServiceSubscribeEventsClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type VoiceService_SubscribeEventsClient interface {
	Recv() (*Event, error)
	grpc.ClientStream
}

type voiceServiceSubscribeEventsClient struct {
	grpc.ClientStream
}

func (x *voiceServiceSubscribeEventsClient) Recv() (*Event, error) {
	m := new(Event)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

type VoiceServiceServer interface {
	Ping(context.Context, *PingRequest) (*PingResponse, error)
	Play(context.Context, *PlayRequest) (*CommandResponse, error)
	Pause(context.Context, *PauseRequest) (*CommandResponse, error)
	Resume(context.Context, *ResumeRequest) (*CommandResponse, error)
	Stop(context.Context, *StopRequest) (*CommandResponse, error)
	Skip(context.Context, *SkipRequest) (*CommandResponse, error)
	SetVolume(context.Context, *SetVolumeRequest) (*CommandResponse, error)
	GetStatus(context.Context, *StatusRequest) (*StatusResponse, error)
	SetAudioFx(context.Context, *SetAudioFxRequest) (*AudioFxResponse, error)
	GetAudioFx(context.Context, *GetAudioFxRequest) (*AudioFxResponse, error)
	SubscribeEvents(*SubscribeRequest, VoiceService_SubscribeEventsServer) error
	mustEmbedUnimplementedVoiceServiceServer()
}

type UnimplementedVoiceServiceServer struct{}

func (UnimplementedVoiceServiceServer) Ping(context.Context, *PingRequest) (*PingResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Ping not implemented")
}
func (UnimplementedVoiceServiceServer) Play(context.Context, *PlayRequest) (*CommandResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Play not implemented")
}
func (UnimplementedVoiceServiceServer) Pause(context.Context, *PauseRequest) (*CommandResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Pause not implemented")
}
func (UnimplementedVoiceServiceServer) Resume(context.Context, *ResumeRequest) (*CommandResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Resume not implemented")
}
func (UnimplementedVoiceServiceServer) Stop(context.Context, *StopRequest) (*CommandResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Stop not implemented")
}
func (UnimplementedVoiceServiceServer) Skip(context.Context, *SkipRequest) (*CommandResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Skip not implemented")
}
func (UnimplementedVoiceServiceServer) SetVolume(context.Context, *SetVolumeRequest) (*CommandResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetVolume not implemented")
}
func (UnimplementedVoiceServiceServer) GetStatus(context.Context, *StatusRequest) (*StatusResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetStatus not implemented")
}
func (UnimplementedVoiceServiceServer) SetAudioFx(context.Context, *SetAudioFxRequest) (*AudioFxResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetAudioFx not implemented")
}
func (UnimplementedVoiceServiceServer) GetAudioFx(context.Context, *GetAudioFxRequest) (*AudioFxResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetAudioFx not implemented")
}
func (UnimplementedVoiceServiceServer) SubscribeEvents(*SubscribeRequest, VoiceService_SubscribeEventsServer) error {
	return status.Errorf(codes.Unimplemented, "method SubscribeEvents not implemented")
}
func (UnimplementedVoiceServiceServer) mustEmbedUnimplementedVoiceServiceServer() {}

func RegisterVoiceServiceServer(s grpc.ServiceRegistrar, srv VoiceServiceServer) {
	s.RegisterService(&VoiceService_ServiceDesc, srv)
}

func _VoiceService_Ping_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VoiceServiceServer).Ping(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/voicebridge.voice.v1.VoiceService/Ping",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VoiceServiceServer).Ping(ctx, req.(*PingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VoiceService_Play_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PlayRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VoiceServiceServer).Play(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/voicebridge.voice.v1.VoiceService/Play",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VoiceServiceServer).Play(ctx, req.(*PlayRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VoiceService_Pause_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PauseRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VoiceServiceServer).Pause(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/voicebridge.voice.v1.VoiceService/Pause",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VoiceServiceServer).Pause(ctx, req.(*PauseRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VoiceService_Resume_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ResumeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VoiceServiceServer).Resume(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/voicebridge.voice.v1.VoiceService/Resume",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VoiceServiceServer).Resume(ctx, req.(*ResumeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VoiceService_Stop_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StopRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VoiceServiceServer).Stop(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/voicebridge.voice.v1.VoiceService/Stop",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VoiceServiceServer).Stop(ctx, req.(*StopRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VoiceService_Skip_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SkipRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VoiceServiceServer).Skip(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/voicebridge.voice.v1.VoiceService/Skip",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VoiceServiceServer).Skip(ctx, req.(*SkipRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VoiceService_SetVolume_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetVolumeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VoiceServiceServer).SetVolume(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/voicebridge.voice.v1.VoiceService/SetVolume",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VoiceServiceServer).SetVolume(ctx, req.(*SetVolumeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VoiceService_GetStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VoiceServiceServer).GetStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/voicebridge.voice.v1.VoiceService/GetStatus",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VoiceServiceServer).GetStatus(ctx, req.(*StatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VoiceService_SetAudioFx_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetAudioFxRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VoiceServiceServer).SetAudioFx(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/voicebridge.voice.v1.VoiceService/SetAudioFx",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VoiceServiceServer).SetAudioFx(ctx, req.(*SetAudioFxRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VoiceService_GetAudioFx_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetAudioFxRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VoiceServiceServer).GetAudioFx(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/voicebridge.voice.v1.VoiceService/GetAudioFx",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VoiceServiceServer).GetAudioFx(ctx, req.(*GetAudioFxRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VoiceService_SubscribeEvents_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(SubscribeRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(VoiceServiceServer).SubscribeEvents(m, &voiceServiceSubscribeEventsServer{stream})
}

type VoiceService_SubscribeEventsServer interface {
	Send(*Event) error
	grpc.ServerStream
}

type voiceServiceSubscribeEventsServer struct {
	grpc.ServerStream
}

func (x *voiceServiceSubscribeEventsServer) Send(m *Event) error {
	return x.ServerStream.SendMsg(m)
}

var VoiceService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "voicebridge.voice.v1.VoiceService",
	HandlerType: (*VoiceServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Ping",
			Handler:    _VoiceService_Ping_Handler,
		},
		{
			MethodName: "Play",
			Handler:    _VoiceService_Play_Handler,
		},
		{
			MethodName: "Pause",
			Handler:    _VoiceService_Pause_Handler,
		},
		{
			MethodName: "Resume",
			Handler:    _VoiceService_Resume_Handler,
		},
		{
			MethodName: "Stop",
			Handler:    _VoiceService_Stop_Handler,
		},
		{
			MethodName: "Skip",
			Handler:    _VoiceService_Skip_Handler,
		},
		{
			MethodName: "SetVolume",
			Handler:    _VoiceService_SetVolume_Handler,
		},
		{
			MethodName: "GetStatus",
			Handler:    _VoiceService_GetStatus_Handler,
		},
		{
			MethodName: "SetAudioFx",
			Handler:    _VoiceService_SetAudioFx_Handler,
		},
		{
			MethodName: "GetAudioFx",
			Handler:    _VoiceService_GetAudioFx_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "SubscribeEvents",
			Handler:       _VoiceService_SubscribeEvents_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "voicebridge/voice/v1/voice.proto",
}
