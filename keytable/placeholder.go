package keytable

// The tables below have no recoverable real values (see doc comment on
// NotRemoveMe et al.); their entries are a fixed deterministic fill so the
// shape of the four-table external interface is present without fabricating
// cryptographic material that was never actually retrievable.
var notRemoveMeSeedTable = [256]uint32{
	0xFBCFF074, 0xE3E8EDDB, 0x80F3C8B8, 0xA0B550C0,
	0x0940D796, 0x9DE88A7B, 0x7DD404FA, 0x61E3D65B,
	0x4D15CFEC, 0xB7961623, 0xC5906590, 0x1C62510B,
	0x2FF77AFC, 0xDC719C06, 0x8F4D7C19, 0xB6D3F4FF,
	0xAEC5569D, 0x0B146AF4, 0x3A75E8B5, 0xD31A9C76,
	0x403B3217, 0xF9D2EFF3, 0xB5315034, 0x54D963C7,
	0x6BB12EBB, 0xB9AE04F1, 0xD4765A1D, 0xCC92CBC9,
	0xEB8AB746, 0x710D264F, 0x18F7E1A8, 0x2A8E78C0,
	0x06A9C0BD, 0x706EB160, 0x35572709, 0x2FB1A073,
	0x60578B84, 0xBA720C6E, 0x2CBE3942, 0xD17FD8EB,
	0x450578DA, 0x5B51077A, 0xD5F87A77, 0x904E1254,
	0x3869B9F3, 0x3859F2EB, 0x40736DBF, 0x55E700EB,
	0x8C3EAD2C, 0xD1D4BC10, 0x48262C38, 0x7182BBF8,
	0x85CC958A, 0x96C951AD, 0xE962E531, 0x82A4879F,
	0xAF26775A, 0x1C4E8975, 0xE3E071A0, 0x3467C807,
	0xF320016C, 0x147F8A35, 0x0FACB732, 0xF91DF8D6,
	0xE7FA04B4, 0xE0AB42FB, 0x836D15FE, 0xDD3E4618,
	0xF57EE626, 0x9873E80C, 0xC16FC526, 0x3CD6E7AC,
	0x14F47E3A, 0x050C59E0, 0x4176C81C, 0xBE3C6D55,
	0xB32ECB73, 0x19C7B0C8, 0xD7E74DD4, 0x69301C79,
	0x28A25207, 0x335A919E, 0x27FBDF0F, 0x39056081,
	0xF893FAB9, 0xB1FC56F0, 0x0F0AC9B9, 0x187BF6D0,
	0xA96A59C8, 0xA8CC452B, 0x73942D77, 0xD7CACDEB,
	0xCAE05327, 0xF5DCE518, 0x625800AE, 0x43DA6374,
	0xF1205132, 0xD672BA69, 0xBCA9458B, 0x4E00618D,
	0x2068C389, 0x0247CC25, 0xDE0AB4D5, 0x942A03A0,
	0x4F3A2F68, 0x86E28E19, 0x48E736EC, 0x79B4545C,
	0x42603BF3, 0x7450E790, 0x368E100D, 0xE29BF099,
	0xD850EEC4, 0x0A4E7417, 0x989B5DCD, 0x9CC1E103,
	0x5409B74A, 0x3CF37D1E, 0x45D05551, 0xC733D72E,
	0x4E7759CF, 0x40663A7B, 0x92BC115E, 0x8CF2C133,
	0x8FF451FE, 0xF8118FDB, 0x3CA1D716, 0x535712E4,
	0xD9C65ED8, 0x892E70C1, 0xA5D742E0, 0x503851B9,
	0xDCB3EAE1, 0x461DC6DF, 0x412C24AF, 0xA94F14A5,
	0xA4E644ED, 0xC315E633, 0x4D010731, 0x29BEA4E9,
	0x14947E85, 0x185270B9, 0x785033CC, 0xBC347F2F,
	0x35089135, 0x5CF84A43, 0x4C9EB33C, 0xA4D02D42,
	0xE7CCABC5, 0x60B24077, 0xFAC83E53, 0x6D51F03D,
	0x00CA3A14, 0x9531F1B1, 0xA10F04C9, 0xCC519272,
	0x2B4870B4, 0x90A082C2, 0x83E01CD8, 0xBB2DDEA7,
	0x3383EA82, 0xE2978724, 0xF60EA520, 0xFABCCF7F,
	0x00C35D93, 0xF1CA4346, 0x0FBCEB54, 0x3FBA23D7,
	0x9ABFCB55, 0x93D338BB, 0xB0544D6E, 0x32637688,
	0xFB95E0CE, 0x641C1A56, 0x0D3D3C0D, 0x31C00D04,
	0x93BB9FEE, 0xA4B8CE2C, 0x2F7CA434, 0x512DCA5A,
	0x4F831C47, 0x72808940, 0x595D668C, 0x04975CB3,
	0xBB56FFD4, 0x4B28F14D, 0x98528052, 0x9637D79A,
	0x7F8D9D17, 0xBF9E7CF4, 0x200E2879, 0x70BBCDB9,
	0x281361BB, 0xCC7F8B9D, 0x19DA993E, 0xE21FF45C,
	0x1DAA5C62, 0xB99F11F5, 0x6953DA04, 0x10FF3590,
	0x5EEA62B5, 0xFB30BE7B, 0x1AC7E925, 0x709A6D5C,
	0x57F76EF1, 0x54C50D0B, 0x1412171C, 0x58D5682D,
	0x9165110D, 0x396ED3D6, 0x24BA1929, 0x2CA143DB,
	0xD108713F, 0x9DD8807C, 0x224B4642, 0x0610B73B,
	0x461D1CF0, 0xE84FAB15, 0xD301390D, 0xFEC60833,
	0xC66A0F0D, 0x3A5AEF1D, 0x187BE524, 0xDE3D272E,
	0x5352B12D, 0x7E5C5CA5, 0x622E62B0, 0x99A1AE0C,
	0xF3010BAD, 0x50198469, 0xBB430E49, 0x335D36ED,
	0x0B550305, 0x620F1E62, 0x35A7801B, 0xA5446232,
	0x864A3679, 0x810DB49E, 0x632E0B65, 0x39CA56F9,
	0x2C9151BD, 0x53AA5F81, 0x8F7ED6CD, 0x4F5B2FDC,
	0x807ED3D6, 0xA28A6ADD, 0xA3E2AA3A, 0xE0793E00,
	0x28CDA402, 0xBDF01C06, 0xDF2FECEA, 0xA3E68074,
	0x0A29164D, 0x882D06D9, 0xCA1548E1, 0xCC554207,
}

var localStateSeedTable = [256]uint32{
	0x5D497D18, 0xA88AEAA7, 0xB12E9802, 0xEEEC3382,
	0x0BC6BC9D, 0x8D65B8E8, 0x11B394FC, 0x3FFD1353,
	0x7D1432FB, 0x2AB2F1EB, 0x05E0C368, 0x9C20DB26,
	0x01B06B2D, 0xB2236947, 0xAF914A09, 0xA3D0E8F6,
	0x45C85C13, 0x99D1A364, 0x99D7E341, 0xDB880FE7,
	0x5A37481D, 0x27DFA162, 0x9EE06769, 0x62398ADF,
	0xD2E4104B, 0xE84D66A0, 0x1FCCA822, 0xD2027CE1,
	0x8C2FCB4F, 0xA47BC549, 0x55E42796, 0x171949B2,
	0xD38D71C7, 0xDF1BD189, 0xF38DC9C9, 0x0E36C399,
	0xCD26A682, 0xF38874D8, 0xBE2E5DC4, 0x83DD6444,
	0x945FFAC2, 0x2257F4BA, 0xA8519F59, 0x82DBCA25,
	0xC99156D4, 0x3E73F31D, 0x9C21DE82, 0x7E2D9188,
	0xECF94993, 0xDFFEF585, 0x93F23D4B, 0xFD880E43,
	0x4601BD96, 0x749EF4F6, 0xD5022835, 0xB78C0B51,
	0x15E8EC85, 0x49D5C735, 0xDA881E18, 0x5CAC4636,
	0xB61CC934, 0x803CFF40, 0xEB937B6D, 0xEAE222B4,
	0xC5BD8000, 0xE2E87078, 0xD2B4896E, 0xD1675292,
	0xA873D1CB, 0xCCDC7F29, 0x88ED43AE, 0x12E64611,
	0xADBCCE8B, 0xB1642491, 0xBD3767C8, 0xF70D0C74,
	0x04073231, 0x8D4D724F, 0x164C1818, 0x3F109123,
	0xD224F359, 0x640E5FD1, 0x89C3D489, 0x6E09A6C6,
	0xFF0E7628, 0xD10FB914, 0xF8EE2D84, 0x3EDB0668,
	0x5FC7DB16, 0xB8AD0BD2, 0x3C57654A, 0x248CAE59,
	0x741AC9A4, 0xC4B6E925, 0xBBD11B93, 0x1C9965DA,
	0x0CCF05B7, 0x7CE85F4B, 0x8A183A93, 0xE855C21A,
	0xC0593A71, 0x44A09568, 0xFF39D944, 0x9C30B87F,
	0x48719E5D, 0x15AD886B, 0xDA831906, 0x2F1900F0,
	0x2990DF73, 0xE08AC137, 0x257EC655, 0xE9505E39,
	0x0BEAAB8E, 0xB0EF7F5E, 0x369FFA6A, 0xE7D011CC,
	0xF19D664F, 0x9C853F24, 0x2F5E8767, 0x373CFCBE,
	0x7841C21A, 0xE8712B95, 0x6AA55A7A, 0x3EF4E7EF,
	0xADFE4DA3, 0x7BAE613B, 0x42B0D7FE, 0xA192402A,
	0xB14E87AB, 0x3A7ADA37, 0xABC8D8DD, 0xDC8D4F7A,
	0xE4BA68C0, 0xBA5BD4A3, 0x54964A48, 0x44BD2EBF,
	0x08A43B72, 0xE74F40E5, 0x48874FD5, 0x9F35E216,
	0x1757948D, 0xCCA4476D, 0xE248B5C6, 0xAAD00245,
	0xE8CE3E49, 0x947BF9B3, 0xD77D95D8, 0xF2A12BBB,
	0xBBDA2CA4, 0x25E30162, 0x50988C0C, 0x83E9846F,
	0x9BADAB3D, 0x04C43C24, 0x7E2A5320, 0xD0109ED6,
	0x92F8F855, 0x9FC09142, 0x4464486D, 0xBD6929F0,
	0x0F46C445, 0x9499C230, 0x33E4BF8B, 0x2DEFC797,
	0x73A25809, 0xF0AB817C, 0xE0B34D35, 0xCB6A4193,
	0x0D622364, 0x31B4E661, 0x017BF68C, 0x0430FDC5,
	0xDC901C4A, 0x8FB71FBC, 0x5BAB730A, 0xA6A77E10,
	0xB320ABC0, 0xF99BB01E, 0xEC55B9DD, 0x929D02BF,
	0xCCD0747F, 0xCA318CCD, 0x81D1AC41, 0x9802ED1B,
	0x0248137E, 0x25513047, 0x1B02078E, 0x440A7BD8,
	0x0090626B, 0x4B993190, 0x177347E1, 0xC29FC49D,
	0x58BC456A, 0x22A99C75, 0xA07D1A9B, 0x95F0D18C,
	0x6C61F423, 0x8557879E, 0x1637EA0C, 0xC7140D13,
	0x3E632D09, 0x77363154, 0x352BE2A8, 0x9E593660,
	0x19F85466, 0xE61E3920, 0x64D5F447, 0x6899E225,
	0x4C6DEC73, 0x938FD644, 0x60301487, 0x756A377E,
	0x81C8BF65, 0x236770EB, 0x911534B2, 0x30067AD8,
	0xBAEC4566, 0x1C1CA840, 0xEDDDF84D, 0xC8A1CF41,
	0x760F9168, 0x35AD2DAA, 0x55D66382, 0x503EA795,
	0xFA72369D, 0x8B169718, 0xEF53AC3A, 0xAAA30556,
	0x54FEFE31, 0x3C49292A, 0x2E6E9224, 0x803DB889,
	0xECFB79BE, 0xE92A7381, 0x6A4EFF18, 0x6AFB5F95,
	0xA15DE0D5, 0x095A3DA5, 0x27D84874, 0x0614629E,
	0x74D1C32E, 0x3F8216BB, 0x8B65A64D, 0x58F00396,
	0x6F04A5D0, 0x5BFAF826, 0x70D9669A, 0x1161E4DB,
	0xFDC06E78, 0x5494B235, 0x86079121, 0x4CEE8C7B,
	0xF70FD9F6, 0x852ADACE, 0x4D4D489D, 0x3BBDC2C1,
}

var systemSeedTable = [256]uint32{
	0x3F15FD26, 0x08FCB241, 0xB7180DCA, 0x9DCD46F3,
	0x602C471A, 0xF716A567, 0xF28B5240, 0x0B3CDB21,
	0x2A3BF1B8, 0x79BE385E, 0xACA21592, 0xCCFCF2F3,
	0x5F6D71E1, 0x680E9A16, 0x9E9FB147, 0xA7D32BBA,
	0x146D0FA7, 0xC21A2BA0, 0xA5886C58, 0x1492AAD9,
	0x31F92F11, 0xD5262D7D, 0x9CEFD353, 0x872C0597,
	0x7FD4A3F0, 0xAF4A18A9, 0x03BA68C5, 0x2539B6F2,
	0xC2C74BF4, 0x88CBBCA4, 0xA119BB5D, 0x3F92FD8B,
	0x3DECF5A0, 0x62EEC18C, 0xD0C9FCF6, 0xC79CC989,
	0x076DABF5, 0x6949A7AF, 0x3179D89B, 0x51DDC032,
	0xE2BA2C9C, 0xC4B89129, 0x347559DA, 0x01EDA568,
	0x7E913284, 0x06331464, 0xB78C0DBF, 0x18408919,
	0xBD7B6B65, 0x67F4E544, 0xD4A0A3A3, 0x7708E0EF,
	0xE058C0DE, 0x3E32D7F5, 0x9E864AA7, 0xBCB79DC0,
	0x0CC1302A, 0xD47654FB, 0x170689B7, 0x992427E2,
	0x57B1F86C, 0xD8BBE12D, 0x7BD4856D, 0x82B6C926,
	0x0415E767, 0xB1428690, 0xEDE6C4C3, 0x39219EC3,
	0x6BBF0414, 0x385C0758, 0xEBC9B9AE, 0x430CBD53,
	0xECF7E1A7, 0x7251DEB3, 0xE76AF92E, 0xBA8A081C,
	0x193F7025, 0xE6B4B169, 0x0F7F9CE3, 0x8DA6B589,
	0x742EF9AB, 0x02D1FAAB, 0x11E62E2F, 0xF9C388A0,
	0x017E57CC, 0x1DA67E13, 0xD0847A49, 0xCDF9D037,
	0x25DC1531, 0x3B382E72, 0xF6538D4C, 0xFA886A96,
	0x6B12102B, 0xA4DF11E0, 0xD9458CD1, 0xAD997616,
	0x03E8861E, 0xD54512EC, 0x0B985AD6, 0xBEAB0F95,
	0x4B6FF363, 0xED2C9740, 0xFE326B8C, 0x2C89C0DB,
	0xEB6E1FCC, 0xAEB6A2F8, 0x90D4FF38, 0xF6A76A94,
	0xB24E3FCB, 0xBC76A9B8, 0x5D965813, 0x49242FAE,
	0x62F15EFD, 0x65CF2EE5, 0x7BFF78E8, 0x2D4FC5A9,
	0x7881835B, 0x62177B89, 0x4F3CE332, 0x105AB902,
	0xB9762249, 0x11606BD6, 0xA2DDFF5B, 0x40219BC6,
	0xF4298D17, 0xB54D1A7E, 0x373BE7AC, 0x7C99CE80,
	0x088EE127, 0xF32F7088, 0x4FD68726, 0xF9015453,
	0x3866DB19, 0xE97A3660, 0xBB00F000, 0x27EB9242,
	0x8CA8630D, 0x76F79BB3, 0x10846320, 0x8450E910,
	0xEC77CDC2, 0x6A9A423F, 0x17BEF6AE, 0x20C68EB7,
	0x9B403768, 0x2CD4400C, 0xA922C28B, 0xD31CF36B,
	0xF113ABAB, 0x67C4F304, 0x02D6EBEC, 0x2F71B349,
	0x3C9C30EE, 0xE7989D02, 0xB0E502BE, 0xF36DEF43,
	0xDCD918B5, 0xBF3C1BF1, 0x65E7B074, 0x4F7DB716,
	0x5D3B4956, 0x767BAC66, 0x4D60603B, 0x53650507,
	0x3A50EC08, 0xB26E4A98, 0xC2003AF8, 0xE26FA04A,
	0x1F41628C, 0xBF9153DA, 0x46875BE8, 0x8DF0D87A,
	0x65BE7F8D, 0xCA661F81, 0x24B865DA, 0x1182C0DB,
	0x2D4AFC7F, 0x88273755, 0x4DED43DA, 0xC309550A,
	0x846BE8BC, 0xEB7104AE, 0xC35F79B8, 0x6B405C9E,
	0x75A104FE, 0xD057759C, 0xF58A9A93, 0x11026D89,
	0x73411601, 0x4CDC2520, 0x85FC53F9, 0x35F98155,
	0x72E26C8F, 0x1CF694BA, 0x605204F7, 0x96E055FF,
	0x8A9095FA, 0xCC5F84CE, 0x0B7FD991, 0x8B33F6EF,
	0x5B5CFADE, 0x2F080226, 0x034C12BD, 0xB7B62DF9,
	0x0089E6F0, 0x77B58262, 0x3226E26F, 0xB559360B,
	0x07110971, 0xBAF33433, 0x15DCF55C, 0x55038EE4,
	0x592DC887, 0xA050174B, 0x55A3A9E9, 0xED19015C,
	0xD6C27E29, 0x17EFAD5B, 0xD4919234, 0x4417740E,
	0xB7194C72, 0xF8715CF3, 0xC2B403A5, 0x0F01C9C7,
	0x48DA45BD, 0x349A1F7D, 0xBC17859A, 0x52766901,
	0xBC24AE57, 0x2B873B0F, 0x34EEFEC3, 0x95395A23,
	0x756CD1FC, 0x168A0695, 0xC5B456F4, 0x2C07F1AF,
	0x60A122A5, 0x2CEE4D1F, 0xEF154459, 0x4DDBBB62,
	0xA87C5D59, 0x7A7F989A, 0xD148C8CF, 0xF9261CC7,
	0x80C21921, 0x374D6FDD, 0xDC00EEDC, 0x0B47C14C,
	0x01AFD208, 0x8A3390B0, 0x9B15EF6F, 0x1B2D4AE4,
	0xA9B1065F, 0xE1E2E244, 0x7FE2AF13, 0xA22C6F42,
}

